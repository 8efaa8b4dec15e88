// Package cli builds the folio command tree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/theme"
	"github.com/san-kum/folio/internal/tui"
)

// WindowFunc opens the windowed renderer. It is injected so the command tree
// does not link the graphics backend.
type WindowFunc func(cfg *config.Config, themes *theme.Manager)

type globalFlags struct {
	dataDir    string
	configFile string
}

// New returns the root command. Every call builds fresh flag storage, so
// each subcommand owns its defaults.
func New(window WindowFunc) *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:          "folio",
		Short:        "terminal portfolio with a drifting particle field",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.runTUI(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&g.dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", "config file path (yaml)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the particle field in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			themes, err := themeManager(cfg)
			if err != nil {
				return err
			}
			if window == nil {
				return fmt.Errorf("no window backend in this build")
			}
			window(cfg, themes)
			return nil
		},
	}

	rootCmd.AddCommand(
		guiCmd,
		newRecordCmd(g),
		newEnsembleCmd(g),
		newListCmd(g),
		newPlotCmd(g),
		newExportCmd(g),
		newSnapshotCmd(g),
		newThemeCmd(g),
		newPresetsCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// loadConfig layers the config file and environment, then the data flag
// when it was given explicitly.
func (g *globalFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(g.configFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = g.dataDir
	}
	return cfg, nil
}

func (g *globalFlags) runTUI(cmd *cobra.Command) error {
	cfg, err := g.loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return err
	}

	logFile, err := tea.LogToFile(filepath.Join(cfg.DataDir, "folio.log"), "folio")
	if err != nil {
		return err
	}
	defer logFile.Close()

	themes, err := themeManager(cfg)
	if err != nil {
		return err
	}
	return tui.Run(cfg, themes)
}

func themeManager(cfg *config.Config) (*theme.Manager, error) {
	m := theme.NewManager(theme.NewFileStore(cfg.DataDir))
	if err := m.Init(); err != nil {
		return nil, err
	}
	return m, nil
}

func (g *globalFlags) storedTheme(cmd *cobra.Command) (*theme.Manager, error) {
	cfg, err := g.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return themeManager(cfg)
}

func newThemeCmd(g *globalFlags) *cobra.Command {
	show := func(cmd *cobra.Command, args []string) error {
		m, err := g.storedTheme(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), m.Get())
		return nil
	}
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "show or change the stored theme",
		Args:  cobra.NoArgs,
		RunE:  show,
	}
	themeCmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "show the stored theme",
			RunE:  show,
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "switch between dark and light",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := g.storedTheme(cmd)
				if err != nil {
					return err
				}
				mode, err := m.Toggle()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), mode)
				return nil
			},
		},
		&cobra.Command{
			Use:       "set [dark|light]",
			Short:     "store a theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"dark", "light"},
			RunE: func(cmd *cobra.Command, args []string) error {
				mode, err := theme.Parse(args[0])
				if err != nil {
					return err
				}
				m, err := g.storedTheme(cmd)
				if err != nil {
					return err
				}
				if err := m.Set(mode); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), mode)
				return nil
			},
		},
	)
	return themeCmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list field presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %3d/%-3d particles  link %.0fpx\n",
					name, p.Field.NarrowCount, p.Field.WideCount, p.Field.LinkDistance)
			}
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "folio.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	})
	return configCmd
}
