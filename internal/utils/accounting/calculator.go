// Package accounting holds the shared monetary helpers used by the domain
// calculators.
package accounting

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// Round2 rounds a monetary value to exactly 2 fractional digits, half away
// from zero. It is the final step of every calculation that surfaces a
// money value; intermediate sums stay at full precision to avoid
// cumulative drift.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FlatFromPercent resolves a percentage against a base amount. The result
// is unrounded so callers can keep summing at full precision.
func FlatFromPercent(percent, base decimal.Decimal) decimal.Decimal {
	return base.Mul(percent).Div(oneHundred)
}
