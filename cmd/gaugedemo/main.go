// Command gaugedemo renders a dashboard of gauges to a PNG file.
//
// Usage:
//
//	gaugedemo render --config dash.toml --out dash.png
//	gaugedemo render --dark           # built-in sample dashboard
//	gaugedemo list
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/config"
	"github.com/gogpu/gauge/widget"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	root := &cobra.Command{
		Use:           "gaugedemo",
		Short:         "Render instrument gauges to PNG",
		Version:       gauge.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if debug {
				level = slog.LevelDebug
			}
			gauge.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log cache rebuilds and fallbacks")
	root.AddCommand(newRenderCmd(), newListCmd(), newVersionCmd())
	return root
}

type renderOptions struct {
	config string
	out    string
	dark   bool
	ratio  float64
	jobs   int
}

func newRenderCmd() *cobra.Command {
	o := renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a dashboard file, or the sample dashboard",
		Long: `Render every gauge of a TOML dashboard into one PNG sheet.

Without --config a sample dashboard with one gauge of every kind is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := loadDashboard(o.config)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dark") {
				d.Dark = o.dark
			}
			if cmd.Flags().Changed("ratio") {
				d.Ratio = o.ratio
				if err := d.Validate(); err != nil {
					return err
				}
			}
			if err := renderDashboard(cmd.Context(), d, o.out, o.jobs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d gauges)\n", o.out, len(d.Gauges))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.config, "config", "c", "", "dashboard TOML file")
	f.StringVarP(&o.out, "out", "o", "dashboard.png", "output PNG file")
	f.BoolVar(&o.dark, "dark", false, "use the dark theme")
	f.Float64Var(&o.ratio, "ratio", 1, "device pixel ratio")
	f.IntVarP(&o.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "gauges rendered in parallel")
	return cmd
}

func loadDashboard(path string) (*config.Dashboard, error) {
	if path == "" {
		d := sampleDashboard()
		return &d, d.Validate()
	}
	return config.Load(path)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered gauge kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range widget.List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gaugedemo %s\n", gauge.Version)
		},
	}
}
