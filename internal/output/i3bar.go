package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/CristiGvl/picoMemBar/internal/render"
	"github.com/CristiGvl/picoMemBar/internal/threshold"
)

const blockName = "memory"

type i3barHeader struct {
	Version int `json:"version"`
}

type i3barBlock struct {
	Name     string `json:"name"`
	FullText string `json:"full_text"`
	Color    string `json:"color,omitempty"`
}

// I3barSink writes blocks using the i3bar JSON protocol: a header line
// followed by an endless array with one block array per update
type I3barSink struct {
	w       io.Writer
	colors  Colors
	started bool
}

// NewI3barSink creates an I3barSink
func NewI3barSink(w io.Writer, colors Colors) *I3barSink {
	return &I3barSink{w: w, colors: colors}
}

// Color returns the colour for state, empty for the normal state
func (s *I3barSink) Color(state threshold.State) string {
	switch state {
	case threshold.Degraded:
		return s.colors.Degraded
	case threshold.Critical:
		return s.colors.Bad
	default:
		return ""
	}
}

// Emit writes the block, preceded by the protocol header on first use
func (s *I3barSink) Emit(block render.Block) error {
	line, err := json.Marshal([]i3barBlock{{
		Name:     blockName,
		FullText: block.FullText,
		Color:    s.Color(block.State),
	}})
	if err != nil {
		return fmt.Errorf("failed to encode block: %w", err)
	}

	separator := ","
	if !s.started {
		header, err := json.Marshal(i3barHeader{Version: 1})
		if err != nil {
			return fmt.Errorf("failed to encode header: %w", err)
		}
		if _, err := fmt.Fprintf(s.w, "%s\n[\n", header); err != nil {
			return err
		}
		s.started = true
		separator = ""
	}

	_, err = fmt.Fprintf(s.w, "%s%s\n", separator, line)
	return err
}
