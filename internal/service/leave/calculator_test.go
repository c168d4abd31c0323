package leave

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func leaveRecord(start, end string, status leave.Status) leave.Record {
	return leave.Record{
		EmployeeID: "emp-1",
		StartDate:  date(start),
		EndDate:    date(end),
		Status:     status,
	}
}

func TestCalculateLeaveDuration(t *testing.T) {
	calc := NewCalculator()

	cases := []struct {
		start, end string
		want       int
	}{
		{"2025-03-01", "2025-03-01", 1}, // single day is inclusive
		{"2025-03-01", "2025-03-05", 5},
		{"2025-02-27", "2025-03-02", 4}, // across month boundary
	}
	for _, c := range cases {
		got, err := calc.CalculateLeaveDuration(date(c.start), date(c.end))
		assert.NoError(t, err)
		assert.Equal(t, c.want, got, "%s..%s", c.start, c.end)
	}

	_, err := calc.CalculateLeaveDuration(date("2025-03-05"), date("2025-03-01"))
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestCalculateLeaveBalance(t *testing.T) {
	calc := NewCalculator()

	records := []leave.Record{
		leaveRecord("2025-01-06", "2025-01-10", leave.StatusApproved), // 5 days
		leaveRecord("2025-02-03", "2025-02-04", leave.StatusApproved), // 2 days
		leaveRecord("2025-03-03", "2025-03-07", leave.StatusPending),  // ignored
		leaveRecord("2025-04-01", "2025-04-30", leave.StatusRejected), // ignored
	}

	assert.Equal(t, 14.0, calc.CalculateLeaveBalance(21, records))
	assert.Equal(t, 21.0, calc.CalculateLeaveBalance(21, nil))
}

func TestHasLeaveOverlap(t *testing.T) {
	calc := NewCalculator()

	existing := []leave.Record{
		leaveRecord("2025-03-06", "2025-03-10", leave.StatusApproved),
		leaveRecord("2025-03-01", "2025-03-05", leave.StatusPending), // never blocks
	}

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"adjacent before does not overlap", "2025-03-01", "2025-03-05", false},
		{"adjacent after does not overlap", "2025-03-11", "2025-03-15", false},
		{"shared start boundary overlaps", "2025-03-10", "2025-03-12", true},
		{"shared end boundary overlaps", "2025-03-04", "2025-03-06", true},
		{"contained overlaps", "2025-03-07", "2025-03-08", true},
		{"containing overlaps", "2025-03-01", "2025-03-31", true},
	}
	for _, c := range cases {
		got := calc.HasLeaveOverlap(date(c.start), date(c.end), existing)
		assert.Equal(t, c.want, got, c.name)
	}
}

func TestHasLeaveOverlapSymmetric(t *testing.T) {
	calc := NewCalculator()

	a := leaveRecord("2025-03-04", "2025-03-08", leave.StatusApproved)
	b := leaveRecord("2025-03-06", "2025-03-10", leave.StatusApproved)

	ab := calc.HasLeaveOverlap(a.StartDate, a.EndDate, []leave.Record{b})
	ba := calc.HasLeaveOverlap(b.StartDate, b.EndDate, []leave.Record{a})
	assert.True(t, ab)
	assert.Equal(t, ab, ba, "overlap must be symmetric")
}
