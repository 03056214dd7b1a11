// Package billing holds the money math for invoices and revenue roll-ups.
// All arithmetic runs on decimals; rounding to two places happens only when
// a value is formatted for display.
package billing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseAmount parses a user-supplied amount. Invalid or empty input coerces
// to zero rather than failing, matching how the forms treat blank fields.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// LineItemAmount is quantity times rate, clamped to zero from below.
func LineItemAmount(quantity, rate decimal.Decimal) decimal.Decimal {
	amount := quantity.Mul(rate)
	if amount.IsNegative() {
		return decimal.Zero
	}

	return amount
}

// Tax applies a percentage rate to the subtotal.
func Tax(subtotal, ratePct decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(ratePct).Div(hundred)
}

// Total is subtotal plus tax.
func Total(subtotal, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Add(tax)
}

// FormatAmount renders an amount with two decimal places for display.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Ratio returns part/total as a percentage, or zero when total is zero so
// empty collections report 0 instead of blowing up.
func Ratio(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return part.Mul(hundred).Div(total)
}
