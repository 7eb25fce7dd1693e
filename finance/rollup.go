// finance/rollup.go
package finance

import "github.com/shopspring/decimal"

// IndependentSuppliers is the reporting bucket for suppliers without a parent.
const IndependentSuppliers = "Independent Suppliers"

// RollupRow is the slice of a stored supply row the supplier report needs.
// ParentName is empty when the supplier has no parent group.
type RollupRow struct {
	SupplierName string
	ParentName   string
	Quantity     int
	Price        decimal.Decimal
}

// SupplierGroup is one parent bucket of the supplier report.
type SupplierGroup struct {
	Total    decimal.Decimal            `json:"total"`
	Children map[string]decimal.Decimal `json:"children"`
}

// Rollup groups supply rows by parent supplier, attributing each child's
// amounts to its parent and parentless suppliers to the independent bucket.
// Amounts are raw quantity*price, matching Summarize. The fold is pure and
// keyed by name, so input order does not matter.
func Rollup(rows []RollupRow) map[string]*SupplierGroup {
	groups := make(map[string]*SupplierGroup)

	for _, row := range rows {
		parent := row.ParentName
		if parent == "" {
			parent = IndependentSuppliers
		}

		group, ok := groups[parent]
		if !ok {
			group = &SupplierGroup{
				Total:    decimal.Zero,
				Children: make(map[string]decimal.Decimal),
			}
			groups[parent] = group
		}

		amount := ComputeLine(row.Quantity, row.Price)
		group.Total = group.Total.Add(amount)
		group.Children[row.SupplierName] = group.Children[row.SupplierName].Add(amount)
	}

	return groups
}
