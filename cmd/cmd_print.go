package cmd

import (
	"context"
	"io"
	"os"

	"github.com/CristiGvl/picoMemBar/internal/output"
	"github.com/CristiGvl/picoMemBar/internal/status"
	"github.com/spf13/cobra"
)

// outputFlags select the sink for print and bar
type outputFlags struct {
	output        string
	colorDegraded string
	colorBad      string
}

func (o *outputFlags) register(cmd *cobra.Command, defaultKind output.Kind) {
	colors := output.DefaultColors()
	cmd.Flags().StringVarP(&o.output, "output", "o", string(defaultKind), "Output format: auto, i3bar, term or plain")
	cmd.Flags().StringVar(&o.colorDegraded, "color-degraded", colors.Degraded, "i3bar colour for the degraded state")
	cmd.Flags().StringVar(&o.colorBad, "color-bad", colors.Bad, "i3bar colour for the critical state")
}

func (o *outputFlags) sink(w io.Writer) (output.Sink, error) {
	return output.NewSink(output.Kind(o.output), w, output.Colors{
		Degraded: o.colorDegraded,
		Bad:      o.colorBad,
	})
}

// PrintCmd renders a single memory status update
func PrintCmd(flags *rootFlags) *cobra.Command {
	out := &outputFlags{}
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the memory status once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := status.NewModule(flags.config)
			if err != nil {
				return err
			}
			sink, err := out.sink(os.Stdout)
			if err != nil {
				return err
			}
			return runPrint(cmd.Context(), module, sink)
		},
	}
	out.register(cmd, output.KindAuto)
	return cmd
}

func runPrint(ctx context.Context, module *status.Module, sink output.Sink) error {
	return sink.Emit(module.Update(ctx))
}
