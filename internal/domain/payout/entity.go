package payout

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the monthly payout lifecycle status. The absence of a stored
// record for an (employee, month, year) key means StatusNotComputed.
type Status string

const (
	StatusNotComputed Status = "not_computed"
	StatusComputed    Status = "computed"
	StatusApproved    Status = "approved"
	StatusSalaryPaid  Status = "salary_paid"
	StatusTDSPaid     Status = "tds_paid"
	StatusPaid        Status = "paid"
	StatusRejected    Status = "rejected"
)

// Statuses lists every storable status, for exhaustiveness checks.
var Statuses = []Status{
	StatusNotComputed,
	StatusComputed,
	StatusApproved,
	StatusSalaryPaid,
	StatusTDSPaid,
	StatusPaid,
	StatusRejected,
}

// DeductionBreakdown holds the per-component monthly deductions.
type DeductionBreakdown struct {
	EPF             decimal.Decimal `json:"epf"`
	ESI             decimal.Decimal `json:"esi"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	TDS             decimal.Decimal `json:"tds"`
	Advance         decimal.Decimal `json:"advance"`
	Loan            decimal.Decimal `json:"loan"`
	Other           decimal.Decimal `json:"other"`
}

// Total sums every component.
func (d DeductionBreakdown) Total() decimal.Decimal {
	return d.EPF.
		Add(d.ESI).
		Add(d.ProfessionalTax).
		Add(d.TDS).
		Add(d.Advance).
		Add(d.Loan).
		Add(d.Other)
}

// HasNegative reports whether any component is negative.
func (d DeductionBreakdown) HasNegative() bool {
	for _, c := range []decimal.Decimal{d.EPF, d.ESI, d.ProfessionalTax, d.TDS, d.Advance, d.Loan, d.Other} {
		if c.IsNegative() {
			return true
		}
	}
	return false
}

// MonthlyPayout is the per-employee, per-month payout snapshot. Key is
// (EmployeeID, Month, Year). Derived figures are always recomputed as a
// whole, never patched: MonthlyNetSalary = AdjustedMonthlyGross -
// TotalMonthlyDeductions holds after every compute. Records are never
// physically deleted; rejection is a status, not a removal.
type MonthlyPayout struct {
	ID         string
	EmployeeID string
	Month      int
	Year       int

	BaseMonthlyGross       decimal.Decimal
	LWPDays                decimal.Decimal
	LWPFactor              decimal.Decimal
	AdjustedMonthlyGross   decimal.Decimal
	Deductions             DeductionBreakdown
	TotalMonthlyDeductions decimal.Decimal
	MonthlyNetSalary       decimal.Decimal

	Status Status

	ComputedBy *string
	ComputedAt *time.Time

	ApprovedBy *string
	ApprovedAt *time.Time

	RejectedBy      *string
	RejectedAt      *time.Time
	RejectionReason *string

	SalaryPaidBy           *string
	SalaryPaidAt           *time.Time
	SalaryPaymentReference *string

	TDSPaidBy           *string
	TDSPaidAt           *time.Time
	TDSPaymentReference *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}
