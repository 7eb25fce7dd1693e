// finance/reconcile.go
package finance

import "github.com/shopspring/decimal"

// Settlement is the payment status of one invoice. It drives display flags
// and reminders only; an unsettled invoice never blocks a write.
type Settlement struct {
	Outstanding decimal.Decimal `json:"outstanding"`
	IsSettled   bool            `json:"isSettled"`
}

// Reconcile compares the amounts paid in cash and card against the final
// payable amount.
func Reconcile(finalAmount, paidInCash, paidInCard decimal.Decimal) Settlement {
	outstanding := finalAmount.Sub(paidInCash).Sub(paidInCard)
	return Settlement{
		Outstanding: outstanding,
		IsSettled:   outstanding.IsZero(),
	}
}
