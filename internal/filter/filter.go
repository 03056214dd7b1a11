// Package filter holds the pure matching helpers shared by every domain's
// list filter. Each domain composes these into a Filter function over its
// own records; the in-memory stores call that function, so the engine stays
// testable without any store.
package filter

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SentinelAll disables an enum constraint, alongside the empty string.
const SentinelAll = "all"

// Text reports whether value contains query, case-insensitively.
// An empty query matches everything.
func Text(value, query string) bool {
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

// AnyText reports whether any of the values contains query.
func AnyText(query string, values ...string) bool {
	if query == "" {
		return true
	}

	for _, v := range values {
		if Text(v, query) {
			return true
		}
	}

	return false
}

// Enum reports whether value matches want exactly. An empty want or the
// "all" sentinel disables the constraint.
func Enum(value, want string) bool {
	if want == "" || want == SentinelAll {
		return true
	}

	return value == want
}

// MinDecimal reports whether value >= min. A nil min disables the constraint.
func MinDecimal(value decimal.Decimal, min *decimal.Decimal) bool {
	if min == nil {
		return true
	}

	return value.GreaterThanOrEqual(*min)
}

// MaxDecimal reports whether value <= max. A nil max disables the constraint.
func MaxDecimal(value decimal.Decimal, max *decimal.Decimal) bool {
	if max == nil {
		return true
	}

	return value.LessThanOrEqual(*max)
}

// MinInt reports whether value >= min. A nil min disables the constraint.
func MinInt(value int, min *int) bool {
	if min == nil {
		return true
	}

	return value >= *min
}
