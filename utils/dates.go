// utils/dates.go
package utils

import "time"

// PeriodOf derives the (month, year) period key stored on invoice and
// expense rows. Monthly filters match on this key, not on a date range.
func PeriodOf(t time.Time) (month, year int) {
	return int(t.Month()), t.Year()
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
