// finance/aggregate.go
package finance

import "github.com/shopspring/decimal"

// DiscountType selects how a discount amount is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

// Discount is an optional invoice-level reduction.
type Discount struct {
	Type   DiscountType
	Amount decimal.Decimal
}

// Totals is the invoice-level result of aggregating line items.
// GSTAmount is the GST component already included in FinalAmount; it is
// informational and never added back on top.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	FinalAmount decimal.Decimal `json:"finalAmount"`
	GSTAmount   decimal.Decimal `json:"gstAmount"`
}

// Aggregate sums line items into an invoice subtotal, applies the optional
// discount and derives the GST included in the final amount. A discount that
// would drive the final amount negative clamps it to zero.
func Aggregate(items []LineItem, discount *Discount) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(ComputeLine(item.Quantity, item.UnitPrice))
	}

	final := subtotal
	if discount != nil {
		switch discount.Type {
		case DiscountPercentage:
			final = subtotal.Sub(Round2(subtotal.Mul(discount.Amount).Div(oneHundred)))
		case DiscountFixed:
			final = subtotal.Sub(discount.Amount)
		}
	}
	if final.IsNegative() {
		final = decimal.Zero
	}

	return Totals{
		Subtotal:    subtotal,
		FinalAmount: final,
		GSTAmount:   Round2(final.Mul(GSTRate)),
	}
}
