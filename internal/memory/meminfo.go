package memory

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// meminfoFields maps /proc/meminfo labels to the Snapshot counter they fill
var meminfoFields = []struct {
	label string
	field func(*Snapshot) *uint64
}{
	{"MemTotal:", func(s *Snapshot) *uint64 { return &s.Total }},
	{"MemFree:", func(s *Snapshot) *uint64 { return &s.Free }},
	{"MemAvailable:", func(s *Snapshot) *uint64 { return &s.Available }},
	{"Buffers:", func(s *Snapshot) *uint64 { return &s.Buffers }},
	{"Cached:", func(s *Snapshot) *uint64 { return &s.Cached }},
	{"Shmem:", func(s *Snapshot) *uint64 { return &s.Shared }},
}

// ParseMeminfo reads a /proc/meminfo formatted stream. Values are given in
// KiB and returned in bytes. Parsing stops as soon as every required field
// has been seen.
func ParseMeminfo(r io.Reader) (*Snapshot, error) {
	snap := &Snapshot{}
	unread := len(meminfoFields)
	seen := make([]bool, len(meminfoFields))

	scanner := bufio.NewScanner(r)
	for unread > 0 && scanner.Scan() {
		line := scanner.Text()
		for i, f := range meminfoFields {
			if !strings.HasPrefix(line, f.label) {
				continue
			}
			kib, err := parseKiB(line[len(f.label):])
			if err != nil {
				return nil, fmt.Errorf("%w: %s %v", ErrIncomplete, f.label, err)
			}
			*f.field(snap) = kib * 1024
			// repeated labels overwrite the value but count once
			if !seen[i] {
				seen[i] = true
				unread--
			}
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncomplete, err)
	}

	if unread > 0 {
		return nil, fmt.Errorf("%w: %d meminfo fields missing", ErrIncomplete, unread)
	}

	return snap, nil
}

// parseKiB parses the numeric part of a meminfo value such as "  16318776 kB"
func parseKiB(value string) (uint64, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty value")
	}
	return strconv.ParseUint(fields[0], 10, 64)
}
