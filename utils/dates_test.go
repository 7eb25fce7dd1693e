package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodOf(t *testing.T) {
	month, year := PeriodOf(time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC))
	assert.Equal(t, 3, month)
	assert.Equal(t, 2024, year)

	month, year = PeriodOf(time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, 12, month)
	assert.Equal(t, 2023, year)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, time.March, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 4, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(start, end))
}
