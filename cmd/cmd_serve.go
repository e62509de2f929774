package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/CristiGvl/picoMemBar/api"
	"github.com/CristiGvl/picoMemBar/internal/platform"
	"github.com/CristiGvl/picoMemBar/internal/status"
	"github.com/spf13/cobra"
)

// ServeCmd exposes the memory status over HTTP
func ServeCmd(flags *rootFlags) *cobra.Command {
	var port, bind string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve memory counters and rendered status over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.ValidateSupport(); err != nil {
				slog.Warn("platform validation failed", "error", err)
			}

			module, err := status.NewModule(flags.config)
			if err != nil {
				return err
			}
			server := api.NewServer(module)

			// Handle graceful shutdown
			go func() {
				sigChan := make(chan os.Signal, 1)
				signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
				<-sigChan

				if err := server.Shutdown(); err != nil {
					slog.Error("error during shutdown", "error", err)
				}
			}()

			slog.Info("starting picoMemBar server", "bind", bind, "port", port)
			return server.Start(bind + ":" + port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "8080", "Port to run the server on")
	cmd.Flags().StringVar(&bind, "bind", "127.0.0.1", "IP address to bind the server to")
	return cmd
}
