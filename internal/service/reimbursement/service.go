package reimbursement

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/reimbursement"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type TotalsResponse struct {
	EmployeeID    string          `json:"employee_id"`
	ApprovedTotal decimal.Decimal `json:"approved_total"`
	PendingTotal  decimal.Decimal `json:"pending_total"`
	StartDate     *string         `json:"start_date,omitempty"`
	EndDate       *string         `json:"end_date,omitempty"`
}

type Service struct {
	repo reimbursement.Repository
	calc *Calculator
}

func NewService(repo reimbursement.Repository, calc *Calculator) *Service {
	return &Service{repo: repo, calc: calc}
}

// Totals returns the approved total (date-filtered when bounds are given)
// and the unfiltered pending total for an employee.
func (s *Service) Totals(ctx context.Context, employeeID string, start, end *time.Time) (TotalsResponse, error) {
	if validator.IsEmpty(employeeID) {
		return TotalsResponse{}, validator.ValidationErrors{
			{Field: "employee_id", Message: "is required"},
		}
	}
	if start != nil && end != nil && end.Before(*start) {
		return TotalsResponse{}, validator.ValidationErrors{
			{Field: "end_date", Message: "must not be before start_date"},
		}
	}

	records, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return TotalsResponse{}, fmt.Errorf("failed to list reimbursement records: %w", err)
	}

	resp := TotalsResponse{
		EmployeeID:    employeeID,
		ApprovedTotal: s.calc.CalculateTotalReimbursement(records, start, end),
		PendingTotal:  s.calc.CalculatePendingReimbursement(records),
	}
	if start != nil {
		str := start.Format("2006-01-02")
		resp.StartDate = &str
	}
	if end != nil {
		str := end.Format("2006-01-02")
		resp.EndDate = &str
	}
	return resp, nil
}
