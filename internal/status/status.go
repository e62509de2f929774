// Package status runs one memory status update: read the counters,
// classify them against the thresholds and render the format template.
package status

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/CristiGvl/picoMemBar/internal/memory"
	"github.com/CristiGvl/picoMemBar/internal/render"
	"github.com/CristiGvl/picoMemBar/internal/threshold"
)

// ReadFailedText replaces the rendered output when memory cannot be read
const ReadFailedText = "can't read memory"

const diagPrefix = "picomembar"

// Module produces memory status blocks
type Module struct {
	reader      memory.Reader
	policy      memory.Policy
	renderer    *render.Renderer
	thresholds  threshold.Thresholds
	diagnostics io.Writer
}

// Option configures a Module
type Option func(*Module)

// WithReader overrides the memory reader selected by the config source
func WithReader(r memory.Reader) Option {
	return func(m *Module) {
		m.reader = r
	}
}

// WithDiagnostics sets where diagnostic lines are written, stderr by default
func WithDiagnostics(w io.Writer) Option {
	return func(m *Module) {
		m.diagnostics = w
	}
}

// NewModule creates a Module from a validated config
func NewModule(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	policy, _ := memory.ParsePolicy(cfg.MemoryUsedMethod)
	source, _ := memory.ParseSource(cfg.Source)

	m := &Module{
		reader:      memory.NewReaderFor(source),
		policy:      policy,
		renderer:    cfg.renderer(),
		thresholds:  cfg.thresholds(),
		diagnostics: os.Stderr,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Snapshot reads the current counters together with the used byte count
func (m *Module) Snapshot(ctx context.Context) (*memory.Snapshot, uint64, error) {
	snap, err := m.reader.GetSnapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	return snap, m.policy.Used(snap), nil
}

// Update runs one read, classify and render cycle. Failures never escape:
// they produce a fallback block and a diagnostic line.
func (m *Module) Update(ctx context.Context) render.Block {
	snap, used, err := m.Snapshot(ctx)
	if err != nil {
		return m.failed(err)
	}

	state := m.thresholds.Evaluate(snap.Available, snap.Total)
	return m.renderer.Render(snap, used, state)
}

func (m *Module) failed(err error) render.Block {
	slog.Debug("memory read failed", "error", err)

	if errors.Is(err, memory.ErrUnavailable) {
		fmt.Fprintf(m.diagnostics, "%s: Memory status information is not supported on this system\n", diagPrefix)
		return render.Block{}
	}

	fmt.Fprintf(m.diagnostics, "%s: Cannot read system memory\n", diagPrefix)
	return render.Block{FullText: ReadFailedText}
}
