package cli

import (
	"bytes"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/folio/internal/field"
	"github.com/san-kum/folio/internal/storage"
)

func newListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list recorded traces",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			traces, err := storage.New(cfg.DataDir).List()
			if err != nil {
				return err
			}

			if len(traces) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no traces found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tFRAMES\tSIZE\tPRESET\tTHEME\tLINKS")
			for _, t := range traces {
				p := t.Preset
				if p == "" {
					p = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%.0fx%.0f\t%s\t%s\t%.1f\n",
					t.ID,
					t.Timestamp.Format("2006-01-02 15:04:05"),
					t.Frames,
					t.Width, t.Height,
					p,
					t.Theme,
					t.Metrics["links"],
				)
			}
			return w.Flush()
		},
	}
}

func newPlotCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "plot [trace_id]",
		Short: "plot a trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			st := storage.New(cfg.DataDir)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			series, err := st.LoadFrames(args[0])
			if err != nil {
				return err
			}
			if len(series) == 0 {
				return fmt.Errorf("no frames to plot")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "trace: %s\n", meta.ID)
			fmt.Fprintf(out, "frames: %d  size: %.0fx%.0f  theme: %s\n\n", meta.Frames, meta.Width, meta.Height, meta.Theme)

			plots := []struct {
				caption string
				value   func(field.FrameStats) float64
			}{
				{"links per frame", func(s field.FrameStats) float64 { return float64(s.Links) }},
				{"mean speed", func(s field.FrameStats) float64 { return s.MeanSpeed }},
				{"bounces per frame", func(s field.FrameStats) float64 { return float64(s.Bounces) }},
				{"particles out of bounds", func(s field.FrameStats) float64 { return float64(s.OutOfBounds) }},
			}
			for _, p := range plots {
				data := make([]float64, len(series))
				for i, s := range series {
					data[i] = p.value(s)
				}
				fmt.Fprintln(out, asciigraph.Plot(data,
					asciigraph.Height(10),
					asciigraph.Width(80),
					asciigraph.Caption(p.caption),
				))
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func newExportCmd(g *globalFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export [trace_id]",
		Short: "export a trace as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			st := storage.New(cfg.DataDir)
			if out == "" {
				return st.Export(args[0], cmd.OutOrStdout())
			}

			// Render first so a missing trace leaves no file behind.
			var buf bytes.Buffer
			if err := st.Export(args[0], &buf); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}
