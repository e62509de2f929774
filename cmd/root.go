// Package cmd holds the picomembar command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/CristiGvl/picoMemBar/internal/status"
	"github.com/spf13/cobra"
)

// rootFlags are shared by every subcommand
type rootFlags struct {
	config   status.Config
	logLevel string
}

// Execute runs the root command
func Execute() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "picomembar: %v\n", err)
		os.Exit(1)
	}
}

// RootCmd builds the picomembar command tree
func RootCmd() *cobra.Command {
	flags := &rootFlags{config: status.DefaultConfig()}

	root := &cobra.Command{
		Use:           "picomembar",
		Short:         "Memory status for status bars",
		Long:          "Reads system memory counters and renders them through a format template, coloured by degraded and critical thresholds.",
		Version:       appVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(flags.logLevel); err != nil {
				return err
			}
			return flags.config.Validate()
		},
	}

	cfg := &flags.config
	pf := root.PersistentFlags()
	pf.StringVar(&cfg.Format, "format", cfg.Format, "Format template (%total, %used, %free, %available, %shared, %percentage_*)")
	pf.StringVar(&cfg.FormatDegraded, "format-degraded", cfg.FormatDegraded, "Format template used in degraded or critical state")
	pf.StringVar(&cfg.ThresholdDegraded, "threshold-degraded", cfg.ThresholdDegraded, "Available memory below which the state is degraded (e.g. 10%, 1G)")
	pf.StringVar(&cfg.ThresholdCritical, "threshold-critical", cfg.ThresholdCritical, "Available memory below which the state is critical (e.g. 5%, 512M)")
	pf.StringVar(&cfg.MemoryUsedMethod, "memory-used-method", cfg.MemoryUsedMethod, "How used memory is computed: memavailable or classical")
	pf.StringVar(&cfg.Unit, "unit", cfg.Unit, "Largest unit to scale to: auto, B, KiB, MiB, GiB or TiB")
	pf.IntVar(&cfg.Decimals, "decimals", cfg.Decimals, "Number of decimals for byte values")
	pf.StringVar(&cfg.PercentMark, "percent-mark", cfg.PercentMark, "Suffix appended to percentages")
	pf.StringVar(&cfg.Source, "source", cfg.Source, "Memory source: auto or gopsutil")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(
		PrintCmd(flags),
		BarCmd(flags),
		TableCmd(flags),
		ServeCmd(flags),
	)

	return root
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-(no build info)"
	}
	return bi.Main.Version
}
