// Package cli defines the command line interface for the tpu-info tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/accelstack/tpu-info/internal/config"
	"github.com/accelstack/tpu-info/internal/device"
	"github.com/accelstack/tpu-info/internal/libtpu"
	"github.com/accelstack/tpu-info/internal/render"
	"github.com/accelstack/tpu-info/internal/snapshot"
)

// rootOptions holds the flag values for one root command instance.
type rootOptions struct {
	version     bool
	streaming   bool
	rate        float64
	process     bool
	metrics     []string
	listMetrics bool
}

// NewRootCmd builds the tpu-info root command. Each call returns a fully
// independent command; no flag state is shared between instances.
func NewRootCmd(logger zerolog.Logger, cfg *config.Config, out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "tpu-info [metric...]",
		Short:         "Display TPU info and metrics",
		Long:          "Display local TPU devices and libtpu runtime metrics in tabular form.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), logger, cfg, out, opts, args)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.version, "version", "v", false, "display the CLI and runtime versions")
	rootCmd.Flags().BoolVar(&opts.streaming, "streaming", false, "refresh metrics continuously")
	rootCmd.Flags().Float64Var(&opts.rate, "rate", cfg.Refresh.Rate.Seconds(), "refresh rate in seconds for streaming mode")
	rootCmd.Flags().BoolVarP(&opts.process, "process", "p", false, "display the per-device process table")
	rootCmd.Flags().StringSliceVar(&opts.metrics, "metric", nil, "metric to display; repeatable, trailing arguments are also accepted")
	rootCmd.Flags().BoolVar(&opts.listMetrics, "list_metrics", false, "list all supported metrics")

	return rootCmd
}

func run(ctx context.Context, logger zerolog.Logger, cfg *config.Config, out io.Writer, opts *rootOptions, args []string) error {
	if opts.listMetrics {
		listMetrics(out)
		return nil
	}
	if opts.version {
		return versionReport(ctx, logger, cfg, out)
	}

	// --metric values and trailing positional names are equivalent.
	names := append([]string{}, opts.metrics...)
	names = append(names, args...)

	metrics := make([]snapshot.MetricID, 0, len(names))
	for _, name := range names {
		entry, err := snapshot.Lookup(name)
		if err != nil {
			return err
		}
		metrics = append(metrics, entry.ID)
	}

	enum := &device.Enumerator{}
	client := libtpu.New(logger, libtpu.Options{
		Addrs:       cfg.Metrics.Addrs(),
		DialTimeout: cfg.Metrics.DialTimeout,
		CallTimeout: cfg.Metrics.CallTimeout,
	})
	display := render.NewTableDisplay(out, opts.streaming)

	loop := render.NewLoop(logger, enum, client, display, render.Options{
		Metrics: metrics,
		// The inventory table only accompanies the unfiltered view.
		IncludeChips:   len(metrics) == 0 && !opts.process,
		IncludeProcess: opts.process,
	})

	if opts.streaming {
		rate := time.Duration(opts.rate * float64(time.Second))
		if rate <= 0 {
			return fmt.Errorf("invalid refresh rate %.2f, must be positive", opts.rate)
		}
		return loop.Stream(ctx, rate)
	}
	return loop.RunOnce(ctx)
}

// listMetrics prints every catalog entry. The list is the single source of
// truth for what --metric accepts.
func listMetrics(out io.Writer) {
	display := render.NewTableDisplay(out, false)
	table := snapshot.Table{
		Title:   "Supported Metrics",
		Columns: []string{"Metric", "Description"},
	}
	for _, entry := range snapshot.Catalog() {
		table.Rows = append(table.Rows, []string{string(entry.ID), entry.Description})
	}
	display.Render(table)
}

// versionReport prints the CLI version plus what the runtime reports about
// itself. A failed probe degrades every runtime-derived field to an explicit
// N/A instead of failing the command.
func versionReport(ctx context.Context, logger zerolog.Logger, cfg *config.Config, out io.Writer) error {
	client := libtpu.New(logger, libtpu.Options{
		Addrs:       cfg.Metrics.Addrs(),
		DialTimeout: cfg.Metrics.DialTimeout,
		CallTimeout: cfg.Metrics.CallTimeout,
	})
	defer client.Close()

	runtimeVersion := "N/A (incompatible environment)"
	acceleratorType := "N/A (incompatible environment)"
	if client.Probe(ctx) == libtpu.Compatible {
		runtimeVersion = client.RuntimeVersion()

		enum := &device.Enumerator{}
		if chip, count, err := enum.LocalChips(); err == nil && count > 0 {
			acceleratorType = fmt.Sprintf("%s x%d", chip, count)
		} else {
			acceleratorType = snapshot.NA
		}
	}

	fmt.Fprintf(out, "tpu-info version: %s\n", cfg.App.Version)
	fmt.Fprintf(out, "libtpu version: %s\n", runtimeVersion)
	fmt.Fprintf(out, "accelerator: %s\n", acceleratorType)
	return nil
}
