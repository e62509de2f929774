package output

import (
	"fmt"
	"io"

	"github.com/CristiGvl/picoMemBar/internal/render"
	"github.com/CristiGvl/picoMemBar/internal/threshold"
	"github.com/charmbracelet/lipgloss"
)

// TermSink writes one line per block, coloured for terminals
type TermSink struct {
	w             io.Writer
	degradedStyle lipgloss.Style
	criticalStyle lipgloss.Style
}

// NewTermSink creates a TermSink. Colour support is detected on w.
func NewTermSink(w io.Writer) *TermSink {
	renderer := lipgloss.NewRenderer(w)
	return &TermSink{
		w:             w,
		degradedStyle: renderer.NewStyle().Foreground(lipgloss.Color("226")), // Yellow
		criticalStyle: renderer.NewStyle().Foreground(lipgloss.Color("196")), // Bright red
	}
}

// Emit writes the block text in the colour of its state
func (s *TermSink) Emit(block render.Block) error {
	text := block.FullText
	switch block.State {
	case threshold.Degraded:
		text = s.degradedStyle.Render(text)
	case threshold.Critical:
		text = s.criticalStyle.Render(text)
	}
	_, err := fmt.Fprintln(s.w, text)
	return err
}
