package status

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/CristiGvl/picoMemBar/internal/memory"
	"github.com/CristiGvl/picoMemBar/internal/threshold"
)

const (
	mib uint64 = 1024 * 1024
	gib        = 1024 * mib
)

type fakeReader struct {
	snap *memory.Snapshot
	err  error
}

func (r *fakeReader) GetSnapshot(ctx context.Context) (*memory.Snapshot, error) {
	if r.err != nil {
		return nil, r.err
	}
	snapCopy := *r.snap
	return &snapCopy, nil
}

func testSnapshot() *memory.Snapshot {
	return &memory.Snapshot{
		Total:     4 * gib,
		Free:      512 * mib,
		Available: gib,
		Buffers:   128 * mib,
		Cached:    gib,
		Shared:    128 * mib,
	}
}

func newTestModule(t *testing.T, cfg Config, reader memory.Reader) (*Module, *bytes.Buffer) {
	t.Helper()
	var diag bytes.Buffer
	m, err := NewModule(cfg, WithReader(reader), WithDiagnostics(&diag))
	if err != nil {
		t.Fatalf("NewModule returned error: %v", err)
	}
	return m, &diag
}

func TestUpdate_UsedPolicies(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{"memavailable", "3.0 GiB"},
		{"classical", "2.4 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Format = "%used"
			cfg.MemoryUsedMethod = tt.method

			m, _ := newTestModule(t, cfg, &fakeReader{snap: testSnapshot()})
			block := m.Update(context.Background())
			if block.FullText != tt.want {
				t.Errorf("Update = %q, want %q", block.FullText, tt.want)
			}
		})
	}
}

func TestUpdate_States(t *testing.T) {
	tests := []struct {
		name      string
		available uint64
		wantState threshold.State
		wantText  string
	}{
		{"normal", 2 * gib, threshold.Normal, "2.0 GiB"},
		{"degraded", gib, threshold.Degraded, "low: 1.0 GiB"},
		{"critical", 256 * mib, threshold.Critical, "low: 256.0 MiB"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := testSnapshot()
			snap.Available = tc.available

			cfg := DefaultConfig()
			cfg.Format = "%available"
			cfg.FormatDegraded = "low: %available"
			cfg.ThresholdDegraded = "40%"
			cfg.ThresholdCritical = "10%"

			m, _ := newTestModule(t, cfg, &fakeReader{snap: snap})
			block := m.Update(context.Background())
			if block.State != tc.wantState {
				t.Errorf("State = %v, want %v", block.State, tc.wantState)
			}
			if block.FullText != tc.wantText {
				t.Errorf("FullText = %q, want %q", block.FullText, tc.wantText)
			}
		})
	}
}

func TestUpdate_ReadIncomplete(t *testing.T) {
	reader := &fakeReader{err: fmt.Errorf("%w: 2 meminfo fields missing", memory.ErrIncomplete)}
	m, diag := newTestModule(t, DefaultConfig(), reader)

	block := m.Update(context.Background())
	if block.FullText != ReadFailedText {
		t.Errorf("FullText = %q, want %q", block.FullText, ReadFailedText)
	}
	if block.State != threshold.Normal {
		t.Errorf("State = %v, want normal", block.State)
	}
	if got := diag.String(); got != "picomembar: Cannot read system memory\n" {
		t.Errorf("diagnostic = %q", got)
	}
}

func TestUpdate_ReadUnavailable(t *testing.T) {
	m, diag := newTestModule(t, DefaultConfig(), &fakeReader{err: memory.ErrUnavailable})

	block := m.Update(context.Background())
	if block.FullText != "" {
		t.Errorf("FullText = %q, want empty", block.FullText)
	}
	if got := diag.String(); got != "picomembar: Memory status information is not supported on this system\n" {
		t.Errorf("diagnostic = %q", got)
	}
}

func TestSnapshot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MemoryUsedMethod = "classical"
	m, _ := newTestModule(t, cfg, &fakeReader{snap: testSnapshot()})

	snap, used, err := m.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if want := snap.Total - snap.Free - snap.Buffers - snap.Cached; used != want {
		t.Errorf("used = %d, want %d", used, want)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"classical", func(c *Config) { c.MemoryUsedMethod = "classical" }, false},
		{"unknown method", func(c *Config) { c.MemoryUsedMethod = "guess" }, true},
		{"unknown source", func(c *Config) { c.Source = "sysfs" }, true},
		{"negative decimals", func(c *Config) { c.Decimals = -1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)

			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if _, err := NewModule(cfg); (err != nil) != tc.wantErr {
				t.Errorf("NewModule() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
