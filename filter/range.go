package filter

import (
	"strconv"
	"strings"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var (
	// DefaultBudget is both the unfiltered budget criterion and the interval
	// assumed for a venue whose price text has no numbers.
	DefaultBudget = Range{Min: 0, Max: 1_000_000}

	// DefaultCapacity plays the same role for guest capacity.
	DefaultCapacity = Range{Min: 0, Max: 1000}
)

// Overlaps reports whether r and other share at least one value.
func (r Range) Overlaps(other Range) bool {
	return r.Min <= other.Max && r.Max >= other.Min
}

// ParseRange extracts a numeric interval from display text such as
// "₹2,00,000 - ₹5,00,000" or "200-500 guests".
//
// Everything except digits, commas and dashes is dropped, the rest is split on
// dashes and commas are removed as thousand separators. Tokens that still fail
// to parse are skipped. No numbers yields fallback, one number n yields [n, n],
// and otherwise the first two numbers are used.
func ParseRange(text string, fallback Range) Range {
	kept := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '-' {
			return r
		}
		return -1
	}, text)

	var numbers []int
	for _, tok := range strings.Split(kept, "-") {
		tok = strings.TrimSpace(strings.ReplaceAll(tok, ",", ""))
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}

	switch len(numbers) {
	case 0:
		return fallback
	case 1:
		return Range{Min: numbers[0], Max: numbers[0]}
	default:
		return Range{Min: numbers[0], Max: numbers[1]}
	}
}

// PriceRange parses a venue price text, falling back to DefaultBudget.
func PriceRange(text string) Range {
	return ParseRange(text, DefaultBudget)
}

// CapacityRange parses a venue capacity text, falling back to DefaultCapacity.
func CapacityRange(text string) Range {
	return ParseRange(text, DefaultCapacity)
}
