package memory

import (
	"fmt"

	"github.com/samber/lo"
)

// Policy selects how used memory is derived from a Snapshot
type Policy string

const (
	// PolicyMemAvailable computes used = total - available
	PolicyMemAvailable Policy = "memavailable"
	// PolicyClassical computes used = total - free - buffers - cached
	PolicyClassical Policy = "classical"
)

// Policies lists every valid Policy
var Policies = []Policy{PolicyMemAvailable, PolicyClassical}

// ParsePolicy validates a used-memory method name
func ParsePolicy(name string) (Policy, error) {
	if !lo.Contains(Policies, Policy(name)) {
		return "", fmt.Errorf("unknown memory used method %q, expected one of %v", name, Policies)
	}
	return Policy(name), nil
}

// Used returns the used byte count of s. The subtraction is unsigned and
// wraps around if the counters are inconsistent.
func (p Policy) Used(s *Snapshot) uint64 {
	switch p {
	case PolicyClassical:
		return s.Total - s.Free - s.Buffers - s.Cached
	default:
		return s.Total - s.Available
	}
}
