package dateutil

import (
	"testing"
	"time"
)

func TestIsWorkingDay(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2025-03-03", true},  // Monday
		{"2025-03-07", true},  // Friday
		{"2025-03-08", false}, // Saturday
		{"2025-03-09", false}, // Sunday
	}
	for _, c := range cases {
		d, _ := time.Parse("2006-01-02", c.date)
		if got := IsWorkingDay(d); got != c.want {
			t.Errorf("IsWorkingDay(%s) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestWorkingDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2025-03-03", "2025-03-07", 5}, // full Mon-Fri week
		{"2025-03-01", "2025-03-31", 21},
		{"2025-03-08", "2025-03-09", 0}, // weekend only
		{"2025-03-05", "2025-03-05", 1}, // single working day
		{"2025-03-07", "2025-03-03", 0}, // reversed range
	}
	for _, c := range cases {
		start, _ := time.Parse("2006-01-02", c.start)
		end, _ := time.Parse("2006-01-02", c.end)
		if got := WorkingDays(start, end); got != c.want {
			t.Errorf("WorkingDays(%s, %s) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.April, 30},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestFinancialYear(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-04-01", "2025-2026"},
		{"2025-12-31", "2025-2026"},
		{"2026-03-31", "2025-2026"},
		{"2025-03-31", "2024-2025"},
		{"2025-01-15", "2024-2025"},
	}
	for _, c := range cases {
		d, _ := time.Parse("2006-01-02", c.date)
		if got := FinancialYear(d); got != c.want {
			t.Errorf("FinancialYear(%s) = %q, want %q", c.date, got, c.want)
		}
	}
}
