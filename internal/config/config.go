package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/san-kum/folio/internal/field"
)

const (
	DefaultFPS     = 60
	DefaultDataDir = ".folio"
	EnvPrefix      = "FOLIO_"
)

type Config struct {
	FPS     int         `yaml:"fps" koanf:"fps"`
	Seed    int64       `yaml:"seed" koanf:"seed"`
	DataDir string      `yaml:"data_dir" koanf:"data_dir"`
	Field   FieldConfig `yaml:"field" koanf:"field"`
	Effects EffectsConf `yaml:"effects" koanf:"effects"`
}

type FieldConfig struct {
	Breakpoint   float64  `yaml:"breakpoint" koanf:"breakpoint"`
	NarrowCount  int      `yaml:"narrow_count" koanf:"narrow_count"`
	WideCount    int      `yaml:"wide_count" koanf:"wide_count"`
	MaxSpeed     float64  `yaml:"max_speed" koanf:"max_speed"`
	MinSize      float64  `yaml:"min_size" koanf:"min_size"`
	MaxSize      float64  `yaml:"max_size" koanf:"max_size"`
	MinOpacity   float64  `yaml:"min_opacity" koanf:"min_opacity"`
	MaxOpacity   float64  `yaml:"max_opacity" koanf:"max_opacity"`
	LinkDistance float64  `yaml:"link_distance" koanf:"link_distance"`
	LinkAlpha    float64  `yaml:"link_alpha" koanf:"link_alpha"`
	LineWidth    float64  `yaml:"line_width" koanf:"line_width"`
	DarkColor    [3]uint8 `yaml:"dark_color,flow" koanf:"dark_color"`
	LightColor   [3]uint8 `yaml:"light_color,flow" koanf:"light_color"`
}

type EffectsConf struct {
	ReducedMotion bool    `yaml:"reduced_motion" koanf:"reduced_motion"`
	FollowFactor  float64 `yaml:"follow_factor" koanf:"follow_factor"`
	RevealDelayMs int     `yaml:"reveal_delay_ms" koanf:"reveal_delay_ms"`
}

func DefaultConfig() *Config {
	p := field.DefaultParams()
	return &Config{
		FPS:     DefaultFPS,
		DataDir: DefaultDataDir,
		Field: FieldConfig{
			Breakpoint:   p.Breakpoint,
			NarrowCount:  p.NarrowCount,
			WideCount:    p.WideCount,
			MaxSpeed:     p.MaxSpeed,
			MinSize:      p.MinSize,
			MaxSize:      p.MaxSize,
			MinOpacity:   p.MinOpacity,
			MaxOpacity:   p.MaxOpacity,
			LinkDistance: p.LinkDistance,
			LinkAlpha:    p.LinkAlpha,
			LineWidth:    p.LineWidth,
			DarkColor:    [3]uint8{p.Dark.R, p.Dark.G, p.Dark.B},
			LightColor:   [3]uint8{p.Light.R, p.Light.G, p.Light.B},
		},
		Effects: EffectsConf{
			FollowFactor:  0.12,
			RevealDelayMs: 100,
		},
	}
}

// Load layers the yaml file (if present) and FOLIO_* environment variables
// over the defaults. FOLIO_FIELD__WIDE_COUNT sets field.wide_count.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func Save(path string, cfg *Config) error {
	data, err := yamlv3.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Field.Breakpoint <= 0 {
		return fmt.Errorf("breakpoint must be positive, got %f", c.Field.Breakpoint)
	}
	if c.Effects.FollowFactor <= 0 || c.Effects.FollowFactor > 1 {
		return fmt.Errorf("follow_factor must be in (0, 1], got %f", c.Effects.FollowFactor)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("field: %w", err)
	}
	return nil
}

func (c *Config) Params() field.Params {
	f := c.Field
	return field.Params{
		Breakpoint:   f.Breakpoint,
		NarrowCount:  f.NarrowCount,
		WideCount:    f.WideCount,
		MaxSpeed:     f.MaxSpeed,
		MinSize:      f.MinSize,
		MaxSize:      f.MaxSize,
		MinOpacity:   f.MinOpacity,
		MaxOpacity:   f.MaxOpacity,
		LinkDistance: f.LinkDistance,
		LinkAlpha:    f.LinkAlpha,
		LineWidth:    f.LineWidth,
		Dark:         field.RGB{R: f.DarkColor[0], G: f.DarkColor[1], B: f.DarkColor[2]},
		Light:        field.RGB{R: f.LightColor[0], G: f.LightColor[1], B: f.LightColor[2]},
	}
}

// FieldOptions turns the config into options for field.New. A zero seed
// leaves the field time-seeded.
func (c *Config) FieldOptions() []field.Option {
	opts := []field.Option{field.WithParams(c.Params())}
	if c.Seed != 0 {
		opts = append(opts, field.WithSeed(c.Seed))
	}
	return opts
}
