//go:build !linux && !windows && !freebsd

package memory

import (
	"context"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback memory reader for unsupported platforms
func newPlatformReader() Reader {
	return &UnsupportedReader{}
}

// GetSnapshot returns ErrUnavailable for unsupported platforms
func (r *UnsupportedReader) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	return nil, ErrUnavailable
}
