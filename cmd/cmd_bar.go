package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CristiGvl/picoMemBar/internal/output"
	"github.com/CristiGvl/picoMemBar/internal/status"
	"github.com/spf13/cobra"
)

// BarCmd emits memory status updates on an interval until interrupted
func BarCmd(flags *rootFlags) *cobra.Command {
	out := &outputFlags{}
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "bar",
		Short: "Continuously emit memory status for a status bar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", interval)
			}
			module, err := status.NewModule(flags.config)
			if err != nil {
				return err
			}
			sink, err := out.sink(os.Stdout)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runBar(ctx, module, sink, interval)
		},
	}
	out.register(cmd, output.KindI3bar)
	cmd.Flags().DurationVarP(&interval, "interval", "i", 5*time.Second, "Time between updates")
	return cmd
}

func runBar(ctx context.Context, module *status.Module, sink output.Sink, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := sink.Emit(module.Update(ctx)); err != nil {
			return fmt.Errorf("failed to emit status: %w", err)
		}

		select {
		case <-ctx.Done():
			slog.Debug("status loop stopped", "reason", ctx.Err())
			return nil
		case <-ticker.C:
		}
	}
}
