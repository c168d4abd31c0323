package tax

import (
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/tax"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Old-regime slab schedule: nil up to 2.5L, 5% to 5L, 20% to 10L, 30% above.
var (
	slabOneCap   = decimal.NewFromInt(250000)
	slabTwoCap   = decimal.NewFromInt(500000)
	slabThreeCap = decimal.NewFromInt(1000000)

	slabTwoRate   = decimal.NewFromFloat(0.05)
	slabThreeRate = decimal.NewFromFloat(0.20)
	slabFourRate  = decimal.NewFromFloat(0.30)

	// Tax accumulated by exhausting the lower slabs.
	slabTwoFull   = decimal.NewFromInt(12500)  // 5% of 2.5L
	slabThreeFull = decimal.NewFromInt(112500) // 12,500 + 20% of 5L
)

// newRegimeDiscount approximates the new regime as a flat 10% reduction off
// the old-regime liability. This is a placeholder, not a statutory slab
// schedule; replace with the real new-regime table when it is wired in.
var newRegimeDiscount = decimal.NewFromFloat(0.90)

var hundred = decimal.NewFromInt(100)

type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// CalculateBasicTax computes the old-regime progressive tax on taxable
// income. Negative input is treated as zero taxable income.
func (c *Calculator) CalculateBasicTax(taxableIncome decimal.Decimal) decimal.Decimal {
	switch {
	case taxableIncome.LessThanOrEqual(slabOneCap):
		return decimal.Zero
	case taxableIncome.LessThanOrEqual(slabTwoCap):
		return taxableIncome.Sub(slabOneCap).Mul(slabTwoRate)
	case taxableIncome.LessThanOrEqual(slabThreeCap):
		return slabTwoFull.Add(taxableIncome.Sub(slabTwoCap).Mul(slabThreeRate))
	default:
		return slabThreeFull.Add(taxableIncome.Sub(slabThreeCap).Mul(slabFourRate))
	}
}

// CalculateTotalDeductions sums the declared deduction amounts.
func (c *Calculator) CalculateTotalDeductions(deductions []tax.Deduction) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deductions {
		total = total.Add(d.Amount)
	}
	return total
}

// CalculateEffectiveTaxRate returns tax over gross income as a percentage,
// or zero when gross income is zero.
func (c *Calculator) CalculateEffectiveTaxRate(taxAmount, grossIncome decimal.Decimal) decimal.Decimal {
	if grossIncome.IsZero() {
		return decimal.Zero
	}
	return taxAmount.Div(grossIncome).Mul(hundred)
}

// Calculate composes the full response for a request: gross income, taxable
// income after deductions (floored at zero), both regime liabilities and
// the cheaper one recommended. Pure function of the request.
func (c *Calculator) Calculate(req tax.CalculationRequest) (tax.CalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return tax.CalculationResponse{}, err
	}

	financialYear := req.FinancialYear
	if financialYear == "" {
		financialYear = dateutil.CurrentFinancialYear()
	}

	grossIncome := req.BasicSalary.Add(req.Allowances).Add(req.AdditionalIncome)
	totalDeductions := c.CalculateTotalDeductions(req.Deductions)

	taxableIncome := grossIncome.Sub(totalDeductions)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	oldRegimeTax := c.CalculateBasicTax(taxableIncome)
	newRegimeTax := oldRegimeTax.Mul(newRegimeDiscount)

	recommended := tax.RegimeOld
	if newRegimeTax.LessThan(oldRegimeTax) {
		recommended = tax.RegimeNew
	}
	savings := oldRegimeTax.Sub(newRegimeTax).Abs()

	return tax.CalculationResponse{
		EmployeeID:        req.EmployeeID,
		FinancialYear:     financialYear,
		GrossIncome:       grossIncome,
		TotalDeductions:   totalDeductions,
		TaxableIncome:     taxableIncome,
		TaxLiability:      oldRegimeTax,
		NewRegimeTax:      newRegimeTax,
		EffectiveTaxRate:  c.CalculateEffectiveTaxRate(oldRegimeTax, grossIncome),
		RecommendedRegime: recommended,
		PotentialSavings:  savings,
	}, nil
}
