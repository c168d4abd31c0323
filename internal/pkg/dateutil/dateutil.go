package dateutil

import (
	"fmt"
	"time"
)

// IsWorkingDay reports whether t falls on a working day (Monday-Friday).
// Company holidays are resolved by the caller, not here.
func IsWorkingDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// WorkingDays counts working days in [start, end] inclusive.
// Returns 0 when end is before start.
func WorkingDays(start, end time.Time) int {
	start = truncateToDate(start)
	end = truncateToDate(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FinancialYear returns the April-start fiscal year containing t,
// formatted as "2025-2026".
func FinancialYear(t time.Time) string {
	year := t.Year()
	if t.Month() >= time.April {
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	return fmt.Sprintf("%d-%d", year-1, year)
}

// CurrentFinancialYear returns the fiscal year containing the current date.
func CurrentFinancialYear() string {
	return FinancialYear(time.Now())
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
