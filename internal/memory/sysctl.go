package memory

import (
	"context"
	"fmt"
)

// SysctlReader builds a Snapshot from BSD sysctl counters. Only total and
// free are exposed by the kernel, the remaining counters are zero.
type SysctlReader struct {
	// PageSize returns hw.pagesize
	PageSize func() (uint32, error)
	// PhysMem returns hw.physmem
	PhysMem func() (uint64, error)
	// FreePages returns vm.stats.vm.v_free_count
	FreePages func() (uint32, error)
}

// GetSnapshot returns the current memory counters
func (r *SysctlReader) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	pageSize, err := r.PageSize()
	if err != nil {
		return nil, fmt.Errorf("%w: hw.pagesize: %v", ErrIncomplete, err)
	}

	total, err := r.PhysMem()
	if err != nil {
		return nil, fmt.Errorf("%w: hw.physmem: %v", ErrIncomplete, err)
	}

	freePages, err := r.FreePages()
	if err != nil {
		return nil, fmt.Errorf("%w: vm.stats.vm.v_free_count: %v", ErrIncomplete, err)
	}

	return &Snapshot{
		Total: total,
		Free:  uint64(freePages) * uint64(pageSize),
	}, nil
}
