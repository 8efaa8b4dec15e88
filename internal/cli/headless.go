package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/ensemble"
	"github.com/san-kum/folio/internal/export"
	"github.com/san-kum/folio/internal/field"
	"github.com/san-kum/folio/internal/metrics"
	"github.com/san-kum/folio/internal/storage"
	"github.com/san-kum/folio/internal/theme"
	"github.com/san-kum/folio/internal/viz"
)

// fieldFlags are the options every headless command takes.
type fieldFlags struct {
	frames int
	width  float64
	height float64
	seed   int64
	preset string
	theme  string
}

func (o *fieldFlags) register(cmd *cobra.Command, frames int, framesUsage string, seed int64, seedUsage string) {
	cmd.Flags().IntVar(&o.frames, "frames", frames, framesUsage)
	cmd.Flags().Float64Var(&o.width, "width", 1280, "viewport width")
	cmd.Flags().Float64Var(&o.height, "height", 720, "viewport height")
	cmd.Flags().Int64Var(&o.seed, "seed", seed, seedUsage)
	cmd.Flags().StringVar(&o.preset, "preset", "", "field preset")
	cmd.Flags().StringVar(&o.theme, "theme", "", "theme to render with (default: stored theme)")
}

// setup resolves the config, preset, seed and theme.
func (o *fieldFlags) setup(g *globalFlags, cmd *cobra.Command) (*config.Config, theme.Mode, error) {
	cfg, err := g.loadConfig(cmd)
	if err != nil {
		return nil, 0, err
	}
	if o.preset != "" && !cfg.Apply(o.preset) {
		return nil, 0, fmt.Errorf("unknown preset %q (see folio presets)", o.preset)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = o.seed
	}

	mode := theme.Dark
	if o.theme != "" {
		if mode, err = theme.Parse(o.theme); err != nil {
			return nil, 0, err
		}
	} else {
		m, err := themeManager(cfg)
		if err != nil {
			return nil, 0, err
		}
		mode = m.Get()
	}
	return cfg, mode, nil
}

func newRecordCmd(g *globalFlags) *cobra.Command {
	o := &fieldFlags{}
	cmd := &cobra.Command{
		Use:   "record",
		Short: "step the field headless and save a trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.record(g, cmd)
		},
	}
	o.register(cmd, 600, "frames to record", 0, "random seed (0 draws one and records it)")
	return cmd
}

func (o *fieldFlags) record(g *globalFlags, cmd *cobra.Command) error {
	if o.frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", o.frames)
	}
	cfg, mode, err := o.setup(g, cmd)
	if err != nil {
		return err
	}
	// A trace must be replayable, so an unset seed is drawn here and stored.
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	collector := metrics.NewCollector(0, metrics.Defaults()...)
	opts := append(cfg.FieldOptions(), field.WithObserver(collector))
	f, err := field.New(field.Discard{}, field.NewStaticViewport(o.width, o.height), func() theme.Mode { return mode }, opts...)
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	sched := field.NewManual()
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx, sched) }()

	bar := progressbar.NewOptions(o.frames,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("recording"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	for i := 0; i < o.frames; i++ {
		if !sched.Tick() {
			break
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	cancel()

	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(storage.TraceMetadata{
		Preset:  o.preset,
		Seed:    cfg.Seed,
		Width:   o.width,
		Height:  o.height,
		Theme:   mode.String(),
		Metrics: collector.Values(),
	}, collector.History())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "trace: %s\n", id)
	fmt.Fprintf(out, "  %-12s %d\n", "seed", cfg.Seed)
	for _, name := range []string{"links", "mean_speed", "bounces", "containment"} {
		fmt.Fprintf(out, "  %-12s %.4f\n", name, collector.Values()[name])
	}
	return nil
}

type snapshotFlags struct {
	fieldFlags
	out string
}

func newSnapshotCmd(g *globalFlags) *cobra.Command {
	o := &snapshotFlags{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame of the field to svg",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.snapshot(g, cmd)
		},
	}
	o.register(cmd, 120, "frame to capture", 0, "random seed (0 for time-seeded)")
	cmd.Flags().StringVar(&o.out, "out", "field.svg", "output file")
	return cmd
}

func (o *snapshotFlags) snapshot(g *globalFlags, cmd *cobra.Command) error {
	if o.frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", o.frames)
	}
	cfg, mode, err := o.setup(g, cmd)
	if err != nil {
		return err
	}

	svg := export.NewSVG(string(viz.PaletteFor(mode).Background))
	f, err := field.New(svg, field.NewStaticViewport(o.width, o.height), func() theme.Mode { return mode }, cfg.FieldOptions()...)
	if err != nil {
		return err
	}
	f.Step(o.frames)

	out, err := os.Create(o.out)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := svg.WriteTo(out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote frame %d to %s\n", o.frames, o.out)
	return nil
}

type ensembleFlags struct {
	fieldFlags
	runs int
}

func newEnsembleCmd(g *globalFlags) *cobra.Command {
	o := &ensembleFlags{}
	cmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run many seeds in parallel and summarise their metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.ensemble(g, cmd)
		},
	}
	o.register(cmd, 600, "frames per run", 1, "first seed")
	cmd.Flags().IntVar(&o.runs, "runs", 8, "number of seeds")
	return cmd
}

func (o *ensembleFlags) ensemble(g *globalFlags, cmd *cobra.Command) error {
	cfg, mode, err := o.setup(g, cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := ensemble.Run(ctx, ensemble.Config{
		Runs:      o.runs,
		Frames:    o.frames,
		SeedStart: o.seed,
		Width:     o.width,
		Height:    o.height,
		Mode:      mode,
		Params:    cfg.Params(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d runs x %d frames in %s\n\n", len(results), o.frames, time.Since(start).Round(time.Millisecond))
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMEAN\tMIN\tMAX")
	for _, s := range ensemble.Summarize(results) {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\n", s.Name, s.Mean, s.Min, s.Max)
	}
	return w.Flush()
}
