package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/folio/internal/field"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.FPS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.Params() != field.DefaultParams() {
		t.Errorf("default params drifted from field defaults")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Field.WideCount != 50 {
		t.Errorf("expected defaults, got wide_count %d", cfg.Field.WideCount)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Field.WideCount = 80

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Seed != 42 || loaded.Field.WideCount != 80 {
		t.Errorf("unexpected values: seed=%d wide=%d", loaded.Seed, loaded.Field.WideCount)
	}
	if loaded.Field.DarkColor != [3]uint8{52, 211, 153} {
		t.Errorf("dark colour lost: %v", loaded.Field.DarkColor)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte("field:\n  link_distance: 90\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Field.LinkDistance != 90 {
		t.Errorf("expected link distance 90, got %f", cfg.Field.LinkDistance)
	}
	if cfg.Field.NarrowCount != 25 || cfg.FPS != 60 {
		t.Error("defaults were not preserved")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_FPS", "30")
	t.Setenv("FOLIO_FIELD__WIDE_COUNT", "70")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.FPS)
	}
	if cfg.Field.WideCount != 70 {
		t.Errorf("expected wide_count 70, got %d", cfg.Field.WideCount)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"zero link distance", func(c *Config) { c.Field.LinkDistance = 0 }},
		{"inverted size", func(c *Config) { c.Field.MinSize, c.Field.MaxSize = 3, 1 }},
		{"opacity above one", func(c *Config) { c.Field.MaxOpacity = 1.5 }},
		{"follow factor", func(c *Config) { c.Effects.FollowFactor = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("dense")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Field.WideCount != 120 {
		t.Errorf("expected wide_count 120, got %d", cfg.Field.WideCount)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset invalid: %v", err)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	if presets[0] != "calm" {
		t.Errorf("expected sorted names, got %v", presets)
	}
}

func TestFieldOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 9

	a, err := field.New(field.Discard{}, field.NewStaticViewport(1000, 800), nil, cfg.FieldOptions()...)
	if err != nil {
		t.Fatal(err)
	}
	b, err := field.New(field.Discard{}, field.NewStaticViewport(1000, 800), nil, cfg.FieldOptions()...)
	if err != nil {
		t.Fatal(err)
	}

	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatal("seeded configs should produce identical fields")
		}
	}
}
