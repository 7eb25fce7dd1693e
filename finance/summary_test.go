package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	summary := Summarize(
		[]decimal.Decimal{dec("180")},
		[]SupplyRow{{Quantity: 5, Price: dec("10")}},
		[]decimal.Decimal{dec("20")},
	)

	assert.True(t, summary.CarServicesTotal.Equal(dec("180")))
	assert.True(t, summary.SuppliesTotal.Equal(dec("50")))
	assert.True(t, summary.ExpensesTotal.Equal(dec("20")))
	assert.True(t, summary.ProfitLoss.Equal(dec("110")))
}

func TestSummarizeEmptyPeriod(t *testing.T) {
	summary := Summarize(nil, nil, nil)
	assert.True(t, summary.CarServicesTotal.IsZero())
	assert.True(t, summary.SuppliesTotal.IsZero())
	assert.True(t, summary.ExpensesTotal.IsZero())
	assert.True(t, summary.ProfitLoss.IsZero())
}

func TestSummarizeUsesRawSupplyAmounts(t *testing.T) {
	// supplies count at quantity*price, without the GST component
	summary := Summarize(nil, []SupplyRow{{Quantity: 2, Price: dec("100")}}, nil)
	assert.True(t, summary.SuppliesTotal.Equal(dec("200")))
	assert.True(t, summary.ProfitLoss.Equal(dec("-200")))
}

func TestSummarizeLoss(t *testing.T) {
	summary := Summarize(
		[]decimal.Decimal{dec("100")},
		[]SupplyRow{{Quantity: 3, Price: dec("40")}},
		[]decimal.Decimal{dec("15"), dec("5")},
	)
	assert.True(t, summary.ExpensesTotal.Equal(dec("20")))
	assert.True(t, summary.ProfitLoss.Equal(dec("-40")))
}
