package render

import (
	"fmt"
	"strings"
)

const binaryBase = 1024

// units are the IEC symbols used for human-readable byte counts
var units = [...]string{"B", "KiB", "MiB", "GiB", "TiB"}

// MaxExponent is the index of the largest unit
const MaxExponent = len(units) - 1

// Unit returns the symbol for 1024^exponent, or "" when out of range
func Unit(exponent int) string {
	if exponent < 0 || exponent > MaxExponent {
		return ""
	}
	return units[exponent]
}

// HumanBytes formats bytes with the given number of decimals. The value is
// scaled down by 1024 until it drops below 1024, the largest unit is
// reached, or the current unit matches unit (case-insensitive).
func HumanBytes(bytes uint64, unit string, decimals int) string {
	base := float64(bytes)
	exponent := 0
	for base >= binaryBase && exponent < MaxExponent {
		if strings.EqualFold(unit, units[exponent]) {
			break
		}
		base /= binaryBase
		exponent++
	}
	return fmt.Sprintf("%.*f %s", decimals, base, units[exponent])
}
