package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/CristiGvl/picoMemBar/internal/render"
	"github.com/CristiGvl/picoMemBar/internal/threshold"
)

func TestI3barSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewI3barSink(&buf, DefaultColors())

	blocks := []render.Block{
		{FullText: "1.0 GiB", State: threshold.Normal},
		{FullText: "low", State: threshold.Degraded},
		{FullText: "very low", State: threshold.Critical},
	}
	for _, b := range blocks {
		if err := sink.Emit(b); err != nil {
			t.Fatalf("Emit returned error: %v", err)
		}
	}

	want := `{"version":1}
[
[{"name":"memory","full_text":"1.0 GiB"}]
,[{"name":"memory","full_text":"low","color":"#FFFF00"}]
,[{"name":"memory","full_text":"very low","color":"#FF0000"}]
`
	if got := buf.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestI3barSink_CustomColors(t *testing.T) {
	sink := NewI3barSink(&bytes.Buffer{}, Colors{Degraded: "#aaaaaa", Bad: "#bbbbbb"})

	tests := []struct {
		state threshold.State
		want  string
	}{
		{threshold.Normal, ""},
		{threshold.Degraded, "#aaaaaa"},
		{threshold.Critical, "#bbbbbb"},
	}
	for _, tt := range tests {
		if got := sink.Color(tt.state); got != tt.want {
			t.Errorf("Color(%v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestPlainSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewPlainSink(&buf)

	if err := sink.Emit(render.Block{FullText: "can't read memory"}); err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	if got := buf.String(); got != "can't read memory\n" {
		t.Errorf("output = %q", got)
	}
}

func TestTermSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTermSink(&buf)

	if err := sink.Emit(render.Block{FullText: "512.0 MiB", State: threshold.Critical}); err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	if got := buf.String(); !strings.Contains(got, "512.0 MiB") || !strings.HasSuffix(got, "\n") {
		t.Errorf("output = %q", got)
	}
}

func TestTermSink_NoColorOnPlainWriter(t *testing.T) {
	for _, state := range []threshold.State{threshold.Normal, threshold.Degraded, threshold.Critical} {
		var buf bytes.Buffer
		sink := NewTermSink(&buf)

		if err := sink.Emit(render.Block{FullText: "512.0 MiB", State: state}); err != nil {
			t.Fatalf("Emit returned error: %v", err)
		}
		if got := buf.String(); got != "512.0 MiB\n" {
			t.Errorf("Emit(%v) on a buffer = %q, want no escape sequences", state, got)
		}
	}
}

func TestNewSink(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		kind    Kind
		wantErr bool
	}{
		{KindAuto, false},
		{KindI3bar, false},
		{KindTerm, false},
		{KindPlain, false},
		{"json", true},
	}
	for _, tt := range tests {
		_, err := NewSink(tt.kind, &buf, DefaultColors())
		if (err != nil) != tt.wantErr {
			t.Errorf("NewSink(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
		}
	}

	sink, _ := NewSink(KindAuto, &buf, DefaultColors())
	if _, ok := sink.(*PlainSink); !ok {
		t.Errorf("NewSink(auto) on a buffer = %T, want *PlainSink", sink)
	}
}
