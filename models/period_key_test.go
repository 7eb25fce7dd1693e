package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarServicePeriodKeyFollowsCarInDate(t *testing.T) {
	cs := &CarService{CarInDateTime: time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)}

	require.NoError(t, cs.BeforeSave(nil))
	assert.Equal(t, 3, cs.Month)
	assert.Equal(t, 2024, cs.Year)

	// editing the source date must move the stored key with it
	cs.CarInDateTime = time.Date(2024, time.April, 2, 8, 0, 0, 0, time.UTC)
	require.NoError(t, cs.BeforeSave(nil))
	assert.Equal(t, 4, cs.Month)
	assert.Equal(t, 2024, cs.Year)
}

func TestSupplyDerivedColumns(t *testing.T) {
	s := &Supply{
		Quantity:     5,
		Price:        decimal.RequireFromString("10"),
		SuppliedDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, s.BeforeSave(nil))
	assert.True(t, s.Amount.Equal(decimal.RequireFromString("50")))
	assert.True(t, s.GSTAmount.Equal(decimal.RequireFromString("5")))
	assert.True(t, s.LineTotal.Equal(decimal.RequireFromString("55")))
	assert.Equal(t, 3, s.Month)
	assert.Equal(t, 2024, s.Year)

	// a price edit re-derives every stored amount
	s.Price = decimal.RequireFromString("12.50")
	require.NoError(t, s.BeforeSave(nil))
	assert.True(t, s.Amount.Equal(decimal.RequireFromString("62.50")))
	assert.True(t, s.GSTAmount.Equal(decimal.RequireFromString("6.25")))
	assert.True(t, s.LineTotal.Equal(decimal.RequireFromString("68.75")))
}

func TestExpensePeriodKey(t *testing.T) {
	e := &Expense{IssuedDate: time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC)}

	require.NoError(t, e.BeforeSave(nil))
	assert.Equal(t, 12, e.Month)
	assert.Equal(t, 2023, e.Year)
}

func TestCarServiceSettlement(t *testing.T) {
	cs := &CarService{
		TotalAmount: decimal.RequireFromString("180"),
		PaidInCash:  decimal.RequireFromString("100"),
		PaidInCard:  decimal.RequireFromString("80"),
	}
	assert.True(t, cs.Settlement().IsSettled)

	cs.PaidInCard = decimal.Zero
	settlement := cs.Settlement()
	assert.False(t, settlement.IsSettled)
	assert.True(t, settlement.Outstanding.Equal(decimal.RequireFromString("80")))
}

func TestCarServiceItemAmount(t *testing.T) {
	item := &CarServiceItem{Quantity: 2, UnitPrice: decimal.RequireFromString("45.50")}
	require.NoError(t, item.BeforeSave(nil))
	assert.True(t, item.Amount.Equal(decimal.RequireFromString("91")))
}

func TestCarServiceIsOpen(t *testing.T) {
	cs := &CarService{}
	assert.True(t, cs.IsOpen())

	out := time.Now()
	cs.CarOutDateTime = &out
	assert.False(t, cs.IsOpen())
}
