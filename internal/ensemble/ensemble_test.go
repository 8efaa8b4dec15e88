package ensemble

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/folio/internal/field"
	"github.com/san-kum/folio/internal/theme"
)

func testConfig(runs int) Config {
	return Config{
		Runs:      runs,
		Frames:    200,
		SeedStart: 10,
		Width:     1000,
		Height:    800,
		Mode:      theme.Dark,
		Params:    field.DefaultParams(),
	}
}

func TestRunSeedsInOrder(t *testing.T) {
	rs, err := Run(context.Background(), testConfig(4))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(rs) != 4 {
		t.Fatalf("expected 4 results, got %d", len(rs))
	}
	for i, r := range rs {
		if r.Seed != 10+int64(i) {
			t.Errorf("result %d has seed %d", i, r.Seed)
		}
		if _, ok := r.Metrics["links"]; !ok {
			t.Errorf("result %d missing links metric", i)
		}
	}
}

func TestRunIsDeterministicPerSeed(t *testing.T) {
	a, err := Run(context.Background(), testConfig(2))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(context.Background(), testConfig(2))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		for name, v := range a[i].Metrics {
			if b[i].Metrics[name] != v {
				t.Errorf("seed %d %s differs: %v vs %v", a[i].Seed, name, v, b[i].Metrics[name])
			}
		}
	}
}

func TestRunValidation(t *testing.T) {
	if _, err := Run(context.Background(), testConfig(0)); !errors.Is(err, ErrNoRuns) {
		t.Errorf("expected ErrNoRuns, got %v", err)
	}

	cfg := testConfig(1)
	cfg.Params.LinkDistance = 0
	if _, err := Run(context.Background(), cfg); err == nil {
		t.Error("expected invalid params to fail")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, testConfig(3)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	rs := []Result{
		{Seed: 1, Metrics: map[string]float64{"links": 10, "bounces": 2}},
		{Seed: 2, Metrics: map[string]float64{"links": 20, "bounces": 4}},
	}
	got := Summarize(rs)
	if len(got) != 2 || got[0].Name != "bounces" || got[1].Name != "links" {
		t.Fatalf("unexpected summaries: %+v", got)
	}
	if l := got[1]; l.Mean != 15 || l.Min != 10 || l.Max != 20 {
		t.Errorf("links summary wrong: %+v", l)
	}
}
