package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
)

type BalanceResponse struct {
	EmployeeID string  `json:"employee_id"`
	Year       int     `json:"year"`
	TotalQuota float64 `json:"total_quota"`
	UsedDays   float64 `json:"used_days"`
	Balance    float64 `json:"balance"`
}

type OverlapResponse struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Overlaps   bool   `json:"overlaps"`
}

type Service struct {
	repo leave.Repository
	calc *Calculator
}

func NewService(repo leave.Repository, calc *Calculator) *Service {
	return &Service{repo: repo, calc: calc}
}

// Balance returns the remaining leave balance against totalQuota for the
// year, consuming only approved records.
func (s *Service) Balance(ctx context.Context, employeeID string, year int, totalQuota float64) (BalanceResponse, error) {
	if validator.IsEmpty(employeeID) {
		return BalanceResponse{}, validator.ValidationErrors{
			{Field: "employee_id", Message: "is required"},
		}
	}

	records, err := s.repo.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return BalanceResponse{}, fmt.Errorf("failed to list leave records: %w", err)
	}

	balance := s.calc.CalculateLeaveBalance(totalQuota, records)
	return BalanceResponse{
		EmployeeID: employeeID,
		Year:       year,
		TotalQuota: totalQuota,
		UsedDays:   totalQuota - balance,
		Balance:    balance,
	}, nil
}

// CheckOverlap reports whether a prospective request for [start, end]
// collides with an existing approved record. Admitting or rejecting the
// request on the back of this answer is the caller's concern.
func (s *Service) CheckOverlap(ctx context.Context, employeeID string, start, end time.Time) (OverlapResponse, error) {
	if end.Before(start) {
		return OverlapResponse{}, leave.ErrInvalidDateRange
	}

	existing, err := s.repo.ListApprovedByEmployee(ctx, employeeID)
	if err != nil {
		return OverlapResponse{}, fmt.Errorf("failed to list approved leave records: %w", err)
	}

	return OverlapResponse{
		EmployeeID: employeeID,
		StartDate:  start.Format("2006-01-02"),
		EndDate:    end.Format("2006-01-02"),
		Overlaps:   s.calc.HasLeaveOverlap(start, end, existing),
	}, nil
}
