// finance/summary.go
package finance

import "github.com/shopspring/decimal"

// SupplyRow is the slice of a stored supply row the summary needs.
type SupplyRow struct {
	Quantity int
	Price    decimal.Decimal
}

// Summary is the monthly financial overview for one period.
type Summary struct {
	CarServicesTotal decimal.Decimal `json:"carServicesTotal"`
	SuppliesTotal    decimal.Decimal `json:"suppliesTotal"`
	ExpensesTotal    decimal.Decimal `json:"expensesTotal"`
	ProfitLoss       decimal.Decimal `json:"profitLoss"`
}

// Summarize folds the records of one period into monthly totals and a
// profit/loss figure. Supplies are totalled on raw quantity*price, not the
// GST-inclusive line total; the same convention is used by Rollup.
func Summarize(carServiceTotals []decimal.Decimal, supplies []SupplyRow, expenseAmounts []decimal.Decimal) Summary {
	carTotal := decimal.Zero
	for _, t := range carServiceTotals {
		carTotal = carTotal.Add(t)
	}

	suppliesTotal := decimal.Zero
	for _, s := range supplies {
		suppliesTotal = suppliesTotal.Add(ComputeLine(s.Quantity, s.Price))
	}

	expensesTotal := decimal.Zero
	for _, a := range expenseAmounts {
		expensesTotal = expensesTotal.Add(a)
	}

	return Summary{
		CarServicesTotal: carTotal,
		SuppliesTotal:    suppliesTotal,
		ExpensesTotal:    expensesTotal,
		ProfitLoss:       carTotal.Sub(suppliesTotal.Add(expensesTotal)),
	}
}
