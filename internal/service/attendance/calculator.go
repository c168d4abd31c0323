package attendance

import (
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
)

const (
	// StandardWorkdayHours is the baseline used for overtime.
	StandardWorkdayHours = 8.0

	lateThresholdHour = 9
)

type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// CalculateWorkingHours sums (check-out - check-in) in hours over records
// that carry both timestamps; records missing either contribute zero.
func (c *Calculator) CalculateWorkingHours(records []attendance.Record) float64 {
	total := 0.0
	for _, r := range records {
		if r.CheckIn == nil || r.CheckOut == nil {
			continue
		}
		total += r.CheckOut.Sub(*r.CheckIn).Hours()
	}
	return total
}

// CalculateOvertimeHours returns the hours worked beyond the standard
// 8-hour day baseline, floored at zero. The baseline is 8 x len(records):
// callers must pre-filter to at most one record per calendar day, since a
// split shift supplied as two records would inflate the baseline.
func (c *Calculator) CalculateOvertimeHours(records []attendance.Record) float64 {
	overtime := c.CalculateWorkingHours(records) - StandardWorkdayHours*float64(len(records))
	if overtime < 0 {
		return 0
	}
	return overtime
}

// IsLateAttendance reports whether the check-in's local time of day is
// after 09:00 on its own calendar date.
func (c *Calculator) IsLateAttendance(checkIn time.Time) bool {
	cutoff := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(),
		lateThresholdHour, 0, 0, 0, checkIn.Location())
	return checkIn.After(cutoff)
}

// CalculateAttendancePercentage returns present-or-late days over total
// working days as a percentage. A zero-day period is a caller error, not
// an infinity.
func (c *Calculator) CalculateAttendancePercentage(records []attendance.Record, totalWorkingDays int) (float64, error) {
	if totalWorkingDays <= 0 {
		return 0, attendance.ErrInvalidPeriod
	}

	counted := 0
	for _, r := range records {
		if r.Counted() {
			counted++
		}
	}
	return float64(counted) / float64(totalWorkingDays) * 100, nil
}
