//go:build linux

package memory

import (
	"context"
	"fmt"
	"os"
)

// LinuxReader implements memory monitoring for Linux through procfs
type LinuxReader struct {
	// Path is the meminfo file to read, /proc/meminfo when empty
	Path string
}

// newPlatformReader creates a new Linux memory reader
func newPlatformReader() Reader {
	return &LinuxReader{Path: "/proc/meminfo"}
}

// GetSnapshot returns the current memory counters
func (r *LinuxReader) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	path := r.Path
	if path == "" {
		path = "/proc/meminfo"
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncomplete, err)
	}
	defer file.Close()

	return ParseMeminfo(file)
}
