package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var (
	// ErrUnavailable is returned when the platform has no way to read memory counters
	ErrUnavailable = errors.New("memory status information is not supported on this system")
	// ErrIncomplete is returned when the required counters could not all be obtained
	ErrIncomplete = errors.New("cannot read system memory")
)

// Snapshot represents a point-in-time set of memory counters, all in bytes
type Snapshot struct {
	Total     uint64 `json:"total"`
	Free      uint64 `json:"free"`
	Available uint64 `json:"available"`
	Buffers   uint64 `json:"buffers"`
	Cached    uint64 `json:"cached"`
	Shared    uint64 `json:"shared"`
}

// Reader interface for memory monitoring
type Reader interface {
	GetSnapshot(ctx context.Context) (*Snapshot, error)
}

// Source names a memory reader implementation
type Source string

const (
	// SourceAuto reads the kernel interface of the current platform
	SourceAuto Source = "auto"
	// SourceGopsutil reads through gopsutil on any platform it supports
	SourceGopsutil Source = "gopsutil"
)

// Sources lists every valid Source
var Sources = []Source{SourceAuto, SourceGopsutil}

// ParseSource validates a source name
func ParseSource(name string) (Source, error) {
	if !lo.Contains(Sources, Source(name)) {
		return "", fmt.Errorf("unknown memory source %q, expected one of %v", name, Sources)
	}
	return Source(name), nil
}

// NewReader creates a new memory reader for the current platform
func NewReader() Reader {
	return newPlatformReader()
}

// NewReaderFor creates a memory reader for the given source
func NewReaderFor(source Source) Reader {
	if source == SourceGopsutil {
		return &GopsutilReader{}
	}
	return NewReader()
}
