package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/dateutil"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
)

// PeriodSummaryResponse is the attendance figures for one employee-month,
// as consumed by payout computation and the attendance screens.
type PeriodSummaryResponse struct {
	EmployeeID           string  `json:"employee_id"`
	Month                int     `json:"month"`
	Year                 int     `json:"year"`
	TotalWorkingDays     int     `json:"total_working_days"`
	DaysPresent          int     `json:"days_present"`
	DaysLate             int     `json:"days_late"`
	DaysAbsent           int     `json:"days_absent"`
	WorkedHours          float64 `json:"worked_hours"`
	OvertimeHours        float64 `json:"overtime_hours"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type Service struct {
	repo attendance.Repository
	calc *Calculator
}

func NewService(repo attendance.Repository, calc *Calculator) *Service {
	return &Service{repo: repo, calc: calc}
}

// PeriodSummary derives the month's attendance figures from raw records.
// The working-day denominator is the calendar's Monday-Friday count for
// the month.
func (s *Service) PeriodSummary(ctx context.Context, employeeID string, month, year int) (PeriodSummaryResponse, error) {
	if validator.IsEmpty(employeeID) {
		return PeriodSummaryResponse{}, validator.ValidationErrors{
			{Field: "employee_id", Message: "is required"},
		}
	}
	if !validator.IsValidPeriod(month, year) {
		return PeriodSummaryResponse{}, validator.ValidationErrors{
			{Field: "period", Message: "month must be 1-12 and year 2020 or later"},
		}
	}

	records, err := s.repo.ListByEmployeePeriod(ctx, employeeID, month, year)
	if err != nil {
		return PeriodSummaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	workingDays := dateutil.WorkingDays(monthStart, monthEnd)

	percentage, err := s.calc.CalculateAttendancePercentage(records, workingDays)
	if err != nil {
		return PeriodSummaryResponse{}, err
	}

	summary := PeriodSummaryResponse{
		EmployeeID:           employeeID,
		Month:                month,
		Year:                 year,
		TotalWorkingDays:     workingDays,
		WorkedHours:          s.calc.CalculateWorkingHours(records),
		OvertimeHours:        s.calc.CalculateOvertimeHours(records),
		AttendancePercentage: percentage,
	}
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			summary.DaysPresent++
		case attendance.StatusLate:
			summary.DaysLate++
		case attendance.StatusAbsent:
			summary.DaysAbsent++
		}
	}

	return summary, nil
}
