package cmd

import (
	"context"
	"io"
	"os"

	"github.com/CristiGvl/picoMemBar/internal/render"
	"github.com/CristiGvl/picoMemBar/internal/status"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// TableCmd prints every memory counter in a table
func TableCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Display all memory counters in a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := status.NewModule(flags.config)
			if err != nil {
				return err
			}
			return runTable(cmd.Context(), os.Stdout, module, flags.config)
		},
	}
}

type counter struct {
	name  string
	bytes uint64
}

func runTable(ctx context.Context, w io.Writer, module *status.Module, cfg status.Config) error {
	snap, used, err := module.Snapshot(ctx)
	if err != nil {
		return err
	}

	counters := []counter{
		{"total", snap.Total},
		{"used", used},
		{"free", snap.Free},
		{"available", snap.Available},
		{"buffers", snap.Buffers},
		{"cached", snap.Cached},
		{"shared", snap.Shared},
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Counter", "Bytes", "Human", "Of total"})
	t.AppendRows(lo.Map(counters, func(c counter, _ int) table.Row {
		return table.Row{
			c.name,
			c.bytes,
			render.HumanBytes(c.bytes, cfg.Unit, cfg.Decimals),
			percentOf(c.bytes, snap.Total, cfg.PercentMark),
		}
	}))
	t.Render()

	return nil
}

func percentOf(part, total uint64, mark string) string {
	if total == 0 {
		return "-"
	}
	return render.Percent(part, total, mark)
}
