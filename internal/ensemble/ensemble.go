// Package ensemble runs many headless fields side by side, one seed each,
// and summarises their frame metrics.
package ensemble

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"

	"github.com/san-kum/folio/internal/field"
	"github.com/san-kum/folio/internal/metrics"
	"github.com/san-kum/folio/internal/theme"
)

var ErrNoRuns = errors.New("ensemble: runs and frames must be positive")

type Config struct {
	Runs      int
	Frames    int
	SeedStart int64
	Width     float64
	Height    float64
	Mode      theme.Mode
	Params    field.Params
}

type Result struct {
	Seed    int64
	Metrics map[string]float64
}

type Summary struct {
	Name           string
	Mean, Min, Max float64
}

// Run steps cfg.Runs fields concurrently with seeds SeedStart,
// SeedStart+1, ... and returns their metrics in seed order.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Runs <= 0 || cfg.Frames <= 0 {
		return nil, ErrNoRuns
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, cfg.Runs)
	errs := make([]error, cfg.Runs)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			seed := cfg.SeedStart + int64(idx)
			results[idx], errs[idx] = runOne(ctx, cfg, seed)
		}(i)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, cfg Config, seed int64) (Result, error) {
	c := metrics.NewCollector(1, metrics.Defaults()...)
	mode := cfg.Mode
	f, err := field.New(field.Discard{}, field.NewStaticViewport(cfg.Width, cfg.Height),
		func() theme.Mode { return mode },
		field.WithParams(cfg.Params),
		field.WithSeed(seed),
		field.WithObserver(c),
	)
	if err != nil {
		return Result{}, err
	}

	for i := 0; i < cfg.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		f.Frame()
	}
	return Result{Seed: seed, Metrics: c.Values()}, nil
}

func Summarize(rs []Result) []Summary {
	acc := make(map[string]*Summary)
	for _, r := range rs {
		for name, v := range r.Metrics {
			s, ok := acc[name]
			if !ok {
				s = &Summary{Name: name, Min: math.Inf(1), Max: math.Inf(-1)}
				acc[name] = s
			}
			s.Mean += v
			s.Min = math.Min(s.Min, v)
			s.Max = math.Max(s.Max, v)
		}
	}

	out := make([]Summary, 0, len(acc))
	for _, s := range acc {
		s.Mean /= float64(len(rs))
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
