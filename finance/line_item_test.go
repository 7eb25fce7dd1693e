package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRound2HalfUp(t *testing.T) {
	assert.True(t, Round2(dec("12.345")).Equal(dec("12.35")))
	assert.True(t, Round2(dec("12.344")).Equal(dec("12.34")))
	assert.True(t, Round2(dec("12.346")).Equal(dec("12.35")))
	assert.True(t, Round2(dec("12.3")).Equal(dec("12.30")))
}

func TestComputeLine(t *testing.T) {
	assert.True(t, ComputeLine(2, dec("50")).Equal(dec("100")))
	assert.True(t, ComputeLine(3, dec("9.99")).Equal(dec("29.97")))

	// fractional prices round to the cent per line
	assert.True(t, ComputeLine(3, dec("0.125")).Equal(dec("0.38")))
}

func TestComputeLineZeroInputs(t *testing.T) {
	assert.True(t, ComputeLine(0, dec("99.99")).IsZero())
	assert.True(t, ComputeLine(5, decimal.Zero).IsZero())
}

func TestComputeSupplyLine(t *testing.T) {
	line := ComputeSupplyLine(5, dec("10"))
	assert.True(t, line.Amount.Equal(dec("50")))
	assert.True(t, line.GST.Equal(dec("5")))
	assert.True(t, line.Total.Equal(dec("55")))

	line = ComputeSupplyLine(1, dec("0.33"))
	assert.True(t, line.Amount.Equal(dec("0.33")))
	assert.True(t, line.GST.Equal(dec("0.03")))
	assert.True(t, line.Total.Equal(dec("0.36")))
}
