package dictionary

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unbounded is the VM maximum for "n", "2n" and "3n" ranges.
const Unbounded uint32 = math.MaxUint32

// ParseVM parses the compact Value Multiplicity notation of the standard:
// "" and "k" give (k,k), "a-b" gives (a,b) and "a-n", "a-2n", "a-3n" give
// (a,Unbounded). Any other shape returns an error together with the (1,1)
// fallback so callers can keep going.
func ParseVM(vm string) (vmMin, vmMax uint32, err error) {
	parts := strings.Split(vm, "-")
	switch len(parts) {
	case 1:
		if parts[0] == "" {
			return 1, 1, nil
		}
		k, err := parseCount(parts[0])
		if err != nil {
			return 1, 1, fmt.Errorf("vm %q: %w", vm, err)
		}
		return k, k, nil

	case 2:
		lo, err := parseCount(parts[0])
		if err != nil {
			return 1, 1, fmt.Errorf("vm %q: %w", vm, err)
		}
		switch parts[1] {
		case "n", "2n", "3n":
			return lo, Unbounded, nil
		}
		hi, err := parseCount(parts[1])
		if err != nil {
			return 1, 1, fmt.Errorf("vm %q: %w", vm, err)
		}
		if hi < lo {
			return 1, 1, fmt.Errorf("vm %q: maximum below minimum", vm)
		}
		return lo, hi, nil

	default:
		return 1, 1, fmt.Errorf("vm %q: more than one range separator", vm)
	}
}

func parseCount(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// formatVM renders a (min,max) pair back in the compact notation.
func formatVM(lo, hi uint32) string {
	switch {
	case hi == Unbounded:
		return fmt.Sprintf("%d-n", lo)
	case lo == hi:
		return strconv.FormatUint(uint64(lo), 10)
	default:
		return fmt.Sprintf("%d-%d", lo, hi)
	}
}
