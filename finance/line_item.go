// finance/line_item.go
package finance

import "github.com/shopspring/decimal"

// ItemType classifies a car-service line item.
type ItemType string

const (
	ItemTypeService ItemType = "SERVICE"
	ItemTypeParts   ItemType = "PARTS"
)

// LineItem is one priced row of an invoice.
type LineItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// SupplyLineTotals carries the derived amounts of one supply row.
type SupplyLineTotals struct {
	Amount decimal.Decimal
	GST    decimal.Decimal
	Total  decimal.Decimal
}

// ComputeLine returns quantity * unitPrice rounded to cents. A zero quantity
// or price yields zero, not an error. Negative inputs are a boundary
// validation concern and propagate arithmetically here.
func ComputeLine(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return Round2(unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
}

// ComputeSupplyLine returns the amount, GST and GST-inclusive total for one
// supply row.
func ComputeSupplyLine(quantity int, price decimal.Decimal) SupplyLineTotals {
	amount := ComputeLine(quantity, price)
	gst := Round2(amount.Mul(GSTRate))
	return SupplyLineTotals{
		Amount: amount,
		GST:    gst,
		Total:  Round2(amount.Add(gst)),
	}
}
