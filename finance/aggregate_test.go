package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateNoDiscount(t *testing.T) {
	items := []LineItem{
		{Name: "Oil change", Quantity: 1, UnitPrice: dec("120")},
		{Name: "Brake pads", Quantity: 2, UnitPrice: dec("45.50")},
	}

	totals := Aggregate(items, nil)
	assert.True(t, totals.Subtotal.Equal(dec("211")))
	assert.True(t, totals.FinalAmount.Equal(dec("211")))
	assert.True(t, totals.GSTAmount.Equal(dec("21.10")))
}

func TestAggregatePercentageDiscount(t *testing.T) {
	items := []LineItem{{Name: "Full service", Quantity: 1, UnitPrice: dec("200")}}
	discount := &Discount{Type: DiscountPercentage, Amount: dec("10")}

	totals := Aggregate(items, discount)
	assert.True(t, totals.Subtotal.Equal(dec("200")))
	assert.True(t, totals.FinalAmount.Equal(dec("180")))
	assert.True(t, totals.GSTAmount.Equal(dec("18")))
}

func TestAggregateFixedDiscountClampsAtZero(t *testing.T) {
	items := []LineItem{{Name: "Wipers", Quantity: 2, UnitPrice: dec("50")}}
	discount := &Discount{Type: DiscountFixed, Amount: dec("150")}

	totals := Aggregate(items, discount)
	assert.True(t, totals.Subtotal.Equal(dec("100")))
	assert.True(t, totals.FinalAmount.IsZero())
	assert.True(t, totals.GSTAmount.IsZero())
}

func TestAggregateFixedDiscount(t *testing.T) {
	items := []LineItem{{Name: "Tyres", Quantity: 4, UnitPrice: dec("85")}}
	discount := &Discount{Type: DiscountFixed, Amount: dec("40")}

	totals := Aggregate(items, discount)
	assert.True(t, totals.Subtotal.Equal(dec("340")))
	assert.True(t, totals.FinalAmount.Equal(dec("300")))
	assert.True(t, totals.GSTAmount.Equal(dec("30")))
}

func TestAggregateEmptyItems(t *testing.T) {
	totals := Aggregate(nil, nil)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.FinalAmount.IsZero())
	assert.True(t, totals.GSTAmount.IsZero())
}

func TestAggregatePercentageRoundsBeforeSubtraction(t *testing.T) {
	// 3 x 33.33 = 99.99; 15% = 14.9985, rounded to 15.00 before subtracting
	items := []LineItem{{Name: "Spark plugs", Quantity: 3, UnitPrice: dec("33.33")}}
	discount := &Discount{Type: DiscountPercentage, Amount: dec("15")}

	totals := Aggregate(items, discount)
	assert.True(t, totals.Subtotal.Equal(dec("99.99")))
	assert.True(t, totals.FinalAmount.Equal(dec("84.99")))
	assert.True(t, totals.GSTAmount.Equal(dec("8.50")))
}

func TestAggregateIsIdempotent(t *testing.T) {
	items := []LineItem{
		{Name: "Labour", Quantity: 3, UnitPrice: dec("80")},
		{Name: "Filter", Quantity: 1, UnitPrice: dec("22.95")},
	}

	first := Aggregate(items, nil)
	second := Aggregate(items, nil)
	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.FinalAmount.Equal(second.FinalAmount))
	assert.True(t, first.GSTAmount.Equal(second.GSTAmount))
}
