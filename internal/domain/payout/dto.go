package payout

import (
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ComputeRequest computes (or recomputes) one employee's payout for a
// period. BaseMonthlyGross overrides the employee's configured base salary
// when set; otherwise the configuration is looked up.
type ComputeRequest struct {
	EmployeeID       string             `json:"employee_id"`
	Month            int                `json:"month"`
	Year             int                `json:"year"`
	BaseMonthlyGross *decimal.Decimal   `json:"base_monthly_gross,omitempty"`
	LWPDays          decimal.Decimal    `json:"lwp_days"`
	Deductions       DeductionBreakdown `json:"deductions"`
	ForceRecompute   bool               `json:"force_recompute"`
	ComputedBy       string             `json:"-"`
}

func (r *ComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "month must be 1-12 and year 2020 or later"})
	}
	if r.BaseMonthlyGross != nil && r.BaseMonthlyGross.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_monthly_gross", Message: "must be non-negative"})
	}
	if r.LWPDays.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "lwp_days", Message: "must be non-negative"})
	}
	if r.Deductions.HasNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "components must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ComputeOverride carries optional per-employee inputs inside a bulk
// compute call.
type ComputeOverride struct {
	BaseMonthlyGross *decimal.Decimal    `json:"base_monthly_gross,omitempty"`
	LWPDays          *decimal.Decimal    `json:"lwp_days,omitempty"`
	Deductions       *DeductionBreakdown `json:"deductions,omitempty"`
}

// BulkComputeRequest computes payouts for many employees independently.
// Empty EmployeeIDs means all active employees.
type BulkComputeRequest struct {
	Month          int                        `json:"month"`
	Year           int                        `json:"year"`
	EmployeeIDs    []string                   `json:"employee_ids,omitempty"`
	Overrides      map[string]ComputeOverride `json:"overrides,omitempty"`
	ForceRecompute bool                       `json:"force_recompute"`
	ComputedBy     string                     `json:"-"`
}

func (r *BulkComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "month must be 1-12 and year 2020 or later"})
	}
	for id, o := range r.Overrides {
		if o.LWPDays != nil && o.LWPDays.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "overrides." + id + ".lwp_days", Message: "must be non-negative"})
		}
		if o.BaseMonthlyGross != nil && o.BaseMonthlyGross.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "overrides." + id + ".base_monthly_gross", Message: "must be non-negative"})
		}
		if o.Deductions != nil && o.Deductions.HasNegative() {
			errs = append(errs, validator.ValidationError{Field: "overrides." + id + ".deductions", Message: "components must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkTransitionRequest applies one status-only action (approve, reject,
// pay legs) to many employees' records for a period.
type BulkTransitionRequest struct {
	Month            int      `json:"month"`
	Year             int      `json:"year"`
	EmployeeIDs      []string `json:"employee_ids,omitempty"`
	Reason           *string  `json:"reason,omitempty"`
	PaymentReference *string  `json:"payment_reference,omitempty"`
	Actor            string   `json:"-"`
}

func (r *BulkTransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "month must be 1-12 and year 2020 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkError is one employee's failure inside a batch.
type BulkError struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

// BulkResult summarises a batch. Skipped counts items excluded by business
// rule (already computed without force, already paid, ineligible source
// status); Failed counts items where an error occurred. A batch call
// succeeds even when every item failed — callers inspect the summary.
type BulkResult struct {
	TotalRequested int         `json:"total_requested"`
	Successful     int         `json:"successful"`
	Failed         int         `json:"failed"`
	Skipped        int         `json:"skipped"`
	Errors         []BulkError `json:"errors,omitempty"`
}

// TransitionRequest applies one lifecycle action to a single record.
type TransitionRequest struct {
	EmployeeID       string  `json:"-"`
	Month            int     `json:"-"`
	Year             int     `json:"-"`
	Reason           *string `json:"reason,omitempty"`
	PaymentReference *string `json:"payment_reference,omitempty"`
	Actor            string  `json:"-"`
}

type Response struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`

	BaseMonthlyGross       decimal.Decimal    `json:"base_monthly_gross"`
	LWPDays                decimal.Decimal    `json:"lwp_days"`
	LWPFactor              decimal.Decimal    `json:"lwp_factor"`
	AdjustedMonthlyGross   decimal.Decimal    `json:"adjusted_monthly_gross"`
	Deductions             DeductionBreakdown `json:"deductions"`
	TotalMonthlyDeductions decimal.Decimal    `json:"total_monthly_deductions"`
	MonthlyNetSalary       decimal.Decimal    `json:"monthly_net_salary"`

	Status       Status   `json:"status"`
	ValidActions []Action `json:"valid_actions"`

	EmployeeName *string `json:"employee_name,omitempty"`

	ComputedBy *string `json:"computed_by,omitempty"`
	ComputedAt *string `json:"computed_at,omitempty"`
	ApprovedBy *string `json:"approved_by,omitempty"`
	ApprovedAt *string `json:"approved_at,omitempty"`

	RejectedBy      *string `json:"rejected_by,omitempty"`
	RejectedAt      *string `json:"rejected_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`

	SalaryPaidBy           *string `json:"salary_paid_by,omitempty"`
	SalaryPaidAt           *string `json:"salary_paid_at,omitempty"`
	SalaryPaymentReference *string `json:"salary_payment_reference,omitempty"`
	TDSPaidBy              *string `json:"tds_paid_by,omitempty"`
	TDSPaidAt              *string `json:"tds_paid_at,omitempty"`
	TDSPaymentReference    *string `json:"tds_payment_reference,omitempty"`
}

type Filter struct {
	Month      *int    `json:"month,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Status     *Status `json:"status,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

type ListResponse struct {
	Data       []Response `json:"data"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}
