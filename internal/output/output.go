// Package output writes rendered memory blocks in the formats status bars consume.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/CristiGvl/picoMemBar/internal/render"
	"golang.org/x/term"
)

// Kind names an output format
type Kind string

const (
	KindAuto  Kind = "auto"
	KindI3bar Kind = "i3bar"
	KindTerm  Kind = "term"
	KindPlain Kind = "plain"
)

// Sink emits rendered blocks
type Sink interface {
	Emit(block render.Block) error
}

// Colors are the i3bar colours used for non-normal states
type Colors struct {
	Degraded string
	Bad      string
}

// DefaultColors returns the stock i3bar degraded and bad colours
func DefaultColors() Colors {
	return Colors{Degraded: "#FFFF00", Bad: "#FF0000"}
}

// NewSink creates the sink for kind writing to w
func NewSink(kind Kind, w io.Writer, colors Colors) (Sink, error) {
	switch kind {
	case KindI3bar:
		return NewI3barSink(w, colors), nil
	case KindTerm:
		return NewTermSink(w), nil
	case KindPlain:
		return NewPlainSink(w), nil
	case KindAuto:
		if isTerminal(w) {
			return NewTermSink(w), nil
		}
		return NewPlainSink(w), nil
	default:
		return nil, fmt.Errorf("unknown output %q", kind)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PlainSink writes one line of text per block
type PlainSink struct {
	w io.Writer
}

// NewPlainSink creates a PlainSink
func NewPlainSink(w io.Writer) *PlainSink {
	return &PlainSink{w: w}
}

// Emit writes the block text followed by a newline
func (s *PlainSink) Emit(block render.Block) error {
	_, err := fmt.Fprintln(s.w, block.FullText)
	return err
}
