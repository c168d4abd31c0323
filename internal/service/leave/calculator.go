package leave

import (
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/leave"
)

type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// CalculateLeaveDuration returns the inclusive day span of [start, end]:
// (end - start in days) + 1. A reversed range is a validation error.
func (c *Calculator) CalculateLeaveDuration(start, end time.Time) (int, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if end.Before(start) {
		return 0, leave.ErrInvalidDateRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// CalculateLeaveBalance subtracts the inclusive span of every approved
// record from total. Pending and rejected records never affect the result.
func (c *Calculator) CalculateLeaveBalance(total float64, records []leave.Record) float64 {
	balance := total
	for _, r := range records {
		if r.Status != leave.StatusApproved {
			continue
		}
		days, err := c.CalculateLeaveDuration(r.StartDate, r.EndDate)
		if err != nil {
			// A stored record with a reversed range cannot consume balance.
			continue
		}
		balance -= float64(days)
	}
	return balance
}

// HasLeaveOverlap reports whether [newStart, newEnd] intersects any
// approved existing record using closed-interval overlap:
// newStart <= existingEnd && newEnd >= existingStart. Adjacent
// non-overlapping ranges do not collide.
func (c *Calculator) HasLeaveOverlap(newStart, newEnd time.Time, existing []leave.Record) bool {
	newStart = truncateToDate(newStart)
	newEnd = truncateToDate(newEnd)

	for _, r := range existing {
		if r.Status != leave.StatusApproved {
			continue
		}
		start := truncateToDate(r.StartDate)
		end := truncateToDate(r.EndDate)
		if !newStart.After(end) && !newEnd.Before(start) {
			return true
		}
	}
	return false
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
