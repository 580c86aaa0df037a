// Package currency formats Taka amounts for display. Amounts stay numeric
// (decimal.Decimal) everywhere else; formatting happens only at the edge.
package currency

import "github.com/shopspring/decimal"

// Symbol is the Bangladeshi Taka glyph.
const Symbol = "৳"

// Format renders an amount as the Taka glyph followed by a fixed-point
// number with two fraction digits, e.g. ৳120.00.
func Format(amount decimal.Decimal) string {
	return Symbol + amount.StringFixed(2)
}
