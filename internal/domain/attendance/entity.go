package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
	StatusOnLeave Status = "on_leave"
)

// Record is a single day's attendance for an employee. Records for past
// dates are immutable: they are written by the attendance capture flow and
// only read by this engine.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     Status

	CheckInLatitude  *float64
	CheckInLongitude *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Counted reports whether the record counts toward the attendance
// percentage. Only present and late days do.
func (r Record) Counted() bool {
	return r.Status == StatusPresent || r.Status == StatusLate
}
