package tax

import (
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// Deduction is a declared tax deduction (80C, 80D, ...).
type Deduction struct {
	Section     string          `json:"section"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// CalculationRequest is the per-employee, per-financial-year input. The
// response is a pure function of this request.
type CalculationRequest struct {
	EmployeeID       string          `json:"employee_id"`
	FinancialYear    string          `json:"financial_year,omitempty"` // defaults to current
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	Allowances       decimal.Decimal `json:"allowances"`
	AdditionalIncome decimal.Decimal `json:"additional_income"`
	Deductions       []Deduction     `json:"deductions,omitempty"`
}

func (r *CalculationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.Allowances.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "allowances", Message: "must be non-negative"})
	}
	if r.AdditionalIncome.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "additional_income", Message: "must be non-negative"})
	}
	for _, d := range r.Deductions {
		if d.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "deductions", Message: "amounts must be non-negative"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculationResponse struct {
	EmployeeID        string          `json:"employee_id"`
	FinancialYear     string          `json:"financial_year"`
	GrossIncome       decimal.Decimal `json:"gross_income"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	TaxableIncome     decimal.Decimal `json:"taxable_income"`
	TaxLiability      decimal.Decimal `json:"tax_liability"`
	NewRegimeTax      decimal.Decimal `json:"new_regime_tax"`
	EffectiveTaxRate  decimal.Decimal `json:"effective_tax_rate"`
	RecommendedRegime Regime          `json:"recommended_regime"`
	PotentialSavings  decimal.Decimal `json:"potential_savings"`
}
