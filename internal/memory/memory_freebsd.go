//go:build freebsd

package memory

import (
	"golang.org/x/sys/unix"
)

// newPlatformReader creates a new FreeBSD memory reader backed by sysctl
func newPlatformReader() Reader {
	return &SysctlReader{
		PageSize:  func() (uint32, error) { return unix.SysctlUint32("hw.pagesize") },
		PhysMem:   func() (uint64, error) { return unix.SysctlUint64("hw.physmem") },
		FreePages: func() (uint32, error) { return unix.SysctlUint32("vm.stats.vm.v_free_count") },
	}
}
