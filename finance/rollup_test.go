package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollup(t *testing.T) {
	rows := []RollupRow{
		{SupplierName: "B", ParentName: "A", Quantity: 3, Price: dec("10")},
		{SupplierName: "B", ParentName: "A", Quantity: 2, Price: dec("10")},
		{SupplierName: "C", Quantity: 1, Price: dec("10")},
	}

	groups := Rollup(rows)
	require.Len(t, groups, 2)

	a := groups["A"]
	require.NotNil(t, a)
	assert.True(t, a.Total.Equal(dec("50")))
	assert.True(t, a.Children["B"].Equal(dec("50")))

	independent := groups[IndependentSuppliers]
	require.NotNil(t, independent)
	assert.True(t, independent.Total.Equal(dec("10")))
	assert.True(t, independent.Children["C"].Equal(dec("10")))
}

func TestRollupOrderIndependent(t *testing.T) {
	rows := []RollupRow{
		{SupplierName: "B", ParentName: "A", Quantity: 1, Price: dec("30")},
		{SupplierName: "D", ParentName: "A", Quantity: 1, Price: dec("20")},
	}
	reversed := []RollupRow{rows[1], rows[0]}

	forward := Rollup(rows)
	backward := Rollup(reversed)
	assert.True(t, forward["A"].Total.Equal(backward["A"].Total))
	assert.True(t, forward["A"].Children["B"].Equal(backward["A"].Children["B"]))
	assert.True(t, forward["A"].Children["D"].Equal(backward["A"].Children["D"]))
}

func TestRollupEmpty(t *testing.T) {
	assert.Empty(t, Rollup(nil))
}
