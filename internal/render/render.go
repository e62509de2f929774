// Package render expands memory format templates.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/CristiGvl/picoMemBar/internal/memory"
	"github.com/CristiGvl/picoMemBar/internal/threshold"
)

// Block is a rendered status update
type Block struct {
	FullText string          `json:"full_text"`
	State    threshold.State `json:"-"`
}

// Renderer expands format templates against a memory snapshot
type Renderer struct {
	Format         string
	FormatDegraded string
	Unit           string
	Decimals       int
	PercentMark    string
}

// values carries the counters a template can reference
type values struct {
	snap *memory.Snapshot
	used uint64
}

type placeholder struct {
	name  string
	write func(r *Renderer, w io.Writer, v values)
}

// placeholders are tried in order; the first name the template continues with wins
var placeholders = []placeholder{
	{"total", bytesOf(func(v values) uint64 { return v.snap.Total })},
	{"used", bytesOf(func(v values) uint64 { return v.used })},
	{"free", bytesOf(func(v values) uint64 { return v.snap.Free })},
	{"available", bytesOf(func(v values) uint64 { return v.snap.Available })},
	{"shared", bytesOf(func(v values) uint64 { return v.snap.Shared })},
	{"percentage_free", percentOf(func(v values) uint64 { return v.snap.Free })},
	{"percentage_available", percentOf(func(v values) uint64 { return v.snap.Available })},
	{"percentage_used", percentOf(func(v values) uint64 { return v.used })},
	{"percentage_shared", percentOf(func(v values) uint64 { return v.snap.Shared })},
}

func bytesOf(get func(values) uint64) func(*Renderer, io.Writer, values) {
	return func(r *Renderer, w io.Writer, v values) {
		io.WriteString(w, HumanBytes(get(v), r.Unit, r.Decimals))
	}
}

func percentOf(get func(values) uint64) func(*Renderer, io.Writer, values) {
	return func(r *Renderer, w io.Writer, v values) {
		io.WriteString(w, Percent(get(v), v.snap.Total, r.PercentMark))
	}
}

// Percent formats part as a percentage of total with one decimal and mark
// appended. A zero total is not guarded against.
func Percent(part, total uint64, mark string) string {
	return fmt.Sprintf("%.1f%s", 100.0*float64(part)/float64(total), mark)
}

// SelectFormat returns the template used for the given state
func (r *Renderer) SelectFormat(state threshold.State) string {
	if state != threshold.Normal && r.FormatDegraded != "" {
		return r.FormatDegraded
	}
	return r.Format
}

// Expand expands the template selected for state into w
func (r *Renderer) Expand(w io.Writer, snap *memory.Snapshot, used uint64, state threshold.State) {
	v := values{snap: snap, used: used}
	format := r.SelectFormat(state)

	for format != "" {
		pct := strings.IndexByte(format, '%')
		if pct < 0 {
			io.WriteString(w, format)
			return
		}
		io.WriteString(w, format[:pct])
		format = format[pct+1:]

		matched := false
		for _, p := range placeholders {
			if strings.HasPrefix(format, p.name) {
				p.write(r, w, v)
				format = format[len(p.name):]
				matched = true
				break
			}
		}
		if !matched {
			io.WriteString(w, "%")
		}
	}
}

// Render expands the template selected for state into a Block
func (r *Renderer) Render(snap *memory.Snapshot, used uint64, state threshold.State) Block {
	var sb strings.Builder
	r.Expand(&sb, snap, used, state)
	return Block{FullText: sb.String(), State: state}
}
