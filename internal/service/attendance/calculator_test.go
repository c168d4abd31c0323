package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func record(day int, checkIn, checkOut string, status attendance.Status) attendance.Record {
	date := time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
	r := attendance.Record{
		EmployeeID: "emp-1",
		Date:       date,
		Status:     status,
	}
	if checkIn != "" {
		t, _ := time.Parse("15:04", checkIn)
		ci := time.Date(2025, time.March, day, t.Hour(), t.Minute(), 0, 0, time.UTC)
		r.CheckIn = &ci
	}
	if checkOut != "" {
		t, _ := time.Parse("15:04", checkOut)
		co := time.Date(2025, time.March, day, t.Hour(), t.Minute(), 0, 0, time.UTC)
		r.CheckOut = &co
	}
	return r
}

func TestCalculateWorkingHours(t *testing.T) {
	calc := NewCalculator()

	records := []attendance.Record{
		record(3, "09:00", "17:00", attendance.StatusPresent), // 8h
		record(4, "09:00", "18:30", attendance.StatusPresent), // 9.5h
		record(5, "09:00", "", attendance.StatusPresent),      // missing check-out
		record(6, "", "", attendance.StatusAbsent),            // no stamps
	}

	assert.InDelta(t, 17.5, calc.CalculateWorkingHours(records), 1e-9)
	assert.Equal(t, 0.0, calc.CalculateWorkingHours(nil))
}

func TestCalculateOvertimeHours(t *testing.T) {
	calc := NewCalculator()

	// 10h + 11h over two 8h days = 5h overtime
	over := []attendance.Record{
		record(3, "08:00", "18:00", attendance.StatusPresent),
		record(4, "08:00", "19:00", attendance.StatusPresent),
	}
	assert.InDelta(t, 5.0, calc.CalculateOvertimeHours(over), 1e-9)

	// under the baseline floors at zero, never negative
	under := []attendance.Record{
		record(3, "09:00", "13:00", attendance.StatusHalfDay),
	}
	assert.Equal(t, 0.0, calc.CalculateOvertimeHours(under))

	// overtime always equals max(0, worked - 8*count)
	worked := calc.CalculateWorkingHours(over)
	assert.InDelta(t, worked-8*float64(len(over)), calc.CalculateOvertimeHours(over), 1e-9)
}

func TestIsLateAttendance(t *testing.T) {
	calc := NewCalculator()

	cases := []struct {
		clock string
		want  bool
	}{
		{"08:59", false},
		{"09:00", false}, // exactly on time
		{"09:01", true},
		{"13:30", true},
	}
	for _, c := range cases {
		parsed, _ := time.Parse("15:04", c.clock)
		checkIn := time.Date(2025, time.March, 3, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
		assert.Equal(t, c.want, calc.IsLateAttendance(checkIn), "check-in at %s", c.clock)
	}
}

func TestCalculateAttendancePercentage(t *testing.T) {
	calc := NewCalculator()

	records := []attendance.Record{
		record(3, "09:00", "17:00", attendance.StatusPresent),
		record(4, "09:30", "17:00", attendance.StatusLate),
		record(5, "", "", attendance.StatusAbsent),
		record(6, "", "", attendance.StatusOnLeave),
	}

	got, err := calc.CalculateAttendancePercentage(records, 4)
	assert.NoError(t, err)
	assert.InDelta(t, 50.0, got, 1e-9) // present + late = 2 of 4

	_, err = calc.CalculateAttendancePercentage(records, 0)
	assert.ErrorIs(t, err, attendance.ErrInvalidPeriod)
}
