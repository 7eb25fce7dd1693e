// finance/money.go
package finance

import "github.com/shopspring/decimal"

// GSTRate is the goods-and-services tax rate applied to invoice amounts.
var GSTRate = decimal.NewFromFloat(0.10)

var oneHundred = decimal.NewFromInt(100)

// Round2 rounds a monetary value to the nearest cent, half away from zero.
// Every derived amount goes through this before it is summed or persisted
// so floating rounding error cannot accumulate across line items.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
