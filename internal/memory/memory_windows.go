//go:build windows

package memory

import (
	"context"
	"fmt"

	"github.com/StackExchange/wmi"
)

// WindowsReader implements memory monitoring for Windows through WMI
type WindowsReader struct{}

// newPlatformReader creates a new Windows memory reader
func newPlatformReader() Reader {
	return &WindowsReader{}
}

// Win32_OperatingSystem holds the memory properties of the WMI class, in KiB
type Win32_OperatingSystem struct {
	TotalVisibleMemorySize uint64
	FreePhysicalMemory     uint64
}

// GetSnapshot returns the current memory counters
func (r *WindowsReader) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	var systems []Win32_OperatingSystem
	err := wmi.Query("SELECT TotalVisibleMemorySize, FreePhysicalMemory FROM Win32_OperatingSystem", &systems)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncomplete, err)
	}

	if len(systems) == 0 {
		return nil, fmt.Errorf("%w: no Win32_OperatingSystem instance", ErrIncomplete)
	}

	free := systems[0].FreePhysicalMemory * 1024
	return &Snapshot{
		Total:     systems[0].TotalVisibleMemorySize * 1024,
		Free:      free,
		Available: free,
	}, nil
}
