package memory

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// GopsutilReader implements memory monitoring for any platform gopsutil supports
type GopsutilReader struct{}

// GetSnapshot returns the current memory counters
func (r *GopsutilReader) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	memInfo, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncomplete, err)
	}

	return &Snapshot{
		Total:     memInfo.Total,
		Free:      memInfo.Free,
		Available: memInfo.Available,
		Buffers:   memInfo.Buffers,
		Cached:    memInfo.Cached,
		Shared:    memInfo.Shared,
	}, nil
}
