// Package pricing computes order totals in whole currency units.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FullPrice sums prices and applies a percentage discount, rounding half up.
// percent is clamped to [0, 100].
func FullPrice(prices []int64, percent int) int64 {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(decimal.NewFromInt(p))
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	factor := hundred.Sub(decimal.NewFromInt(int64(percent))).Div(hundred)
	return total.Mul(factor).Round(0).IntPart()
}
