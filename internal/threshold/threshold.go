// Package threshold resolves degraded/critical threshold expressions into
// absolute byte counts and classifies available memory against them.
package threshold

import (
	"strings"
	"unicode"
)

const binaryBase = 1024

// State is the display state selected for an update
type State int

const (
	Normal State = iota
	Degraded
	Critical
)

// String returns the lower-case name of the state
func (s State) String() string {
	switch s {
	case Degraded:
		return "degraded"
	case Critical:
		return "critical"
	default:
		return "normal"
	}
}

// suffixPowers maps a unit suffix to the power of 1024 it scales by
var suffixPowers = map[byte]int{
	'k': 1,
	'm': 3,
	'g': 4,
	't': 5,
}

// Resolve converts a threshold expression into an absolute byte count.
//
// The expression is an unsigned decimal integer followed by optional
// whitespace and an optional suffix: "%" of total, or one of k, m, g, t
// (either case). Any other suffix leaves the integer as a raw byte count.
func Resolve(expr string, total uint64) uint64 {
	amount, rest := parseUint(expr)
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	if rest == "" {
		return amount
	}

	suffix := rest[0]
	if suffix == '%' {
		return total * amount / 100
	}

	power, ok := suffixPowers[toLower(suffix)]
	if !ok {
		return amount
	}
	for i := 0; i < power; i++ {
		amount *= binaryBase
	}
	return amount
}

// parseUint reads a leading decimal integer the way strtoul does: optional
// whitespace, an optional sign, then digits. A minus sign negates the value
// in unsigned arithmetic, so "-5" wraps around. When no digits are present
// it returns 0 and the untouched input. Values that do not fit saturate at
// the maximum uint64.
func parseUint(s string) (uint64, string) {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	negative := false
	if trimmed != "" && (trimmed[0] == '+' || trimmed[0] == '-') {
		negative = trimmed[0] == '-'
		trimmed = trimmed[1:]
	}

	var n uint64
	i := 0
	overflow := false
	for ; i < len(trimmed) && trimmed[i] >= '0' && trimmed[i] <= '9'; i++ {
		d := uint64(trimmed[i] - '0')
		if n > (^uint64(0)-d)/10 {
			overflow = true
		}
		n = n*10 + d
	}
	if i == 0 {
		return 0, s
	}
	if overflow {
		return ^uint64(0), trimmed[i:]
	}
	if negative {
		n = -n
	}
	return n, trimmed[i:]
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Thresholds holds the configured threshold expressions. An empty
// expression means the check is not configured and is skipped.
type Thresholds struct {
	Degraded string
	Critical string
}

// Evaluate classifies available memory. The critical check runs after the
// degraded one and wins when both match.
func (t Thresholds) Evaluate(available, total uint64) State {
	state := Normal

	if t.Degraded != "" && available < Resolve(t.Degraded, total) {
		state = Degraded
	}

	if t.Critical != "" && available < Resolve(t.Critical, total) {
		state = Critical
	}

	return state
}
