package tax

import (
	"testing"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBasicTaxSlabBoundaries(t *testing.T) {
	calc := NewCalculator()

	cases := []struct {
		income int64
		want   int64
	}{
		{0, 0},
		{250000, 0},       // top of the nil slab
		{300000, 2500},    // 5% of 50k
		{500000, 12500},   // full 5% slab
		{750000, 62500},   // 12,500 + 20% of 250k
		{1000000, 112500}, // full 20% slab
		{1500000, 262500}, // 112,500 + 30% of 500k
	}
	for _, c := range cases {
		got := calc.CalculateBasicTax(decimal.NewFromInt(c.income))
		assert.True(t, got.Equal(decimal.NewFromInt(c.want)),
			"CalculateBasicTax(%d) = %s, want %d", c.income, got, c.want)
	}
}

func TestCalculateTotalDeductions(t *testing.T) {
	calc := NewCalculator()

	deductions := []tax.Deduction{
		{Section: "80C", Amount: decimal.NewFromInt(150000)},
		{Section: "80D", Amount: decimal.NewFromInt(25000)},
	}
	assert.True(t, calc.CalculateTotalDeductions(deductions).Equal(decimal.NewFromInt(175000)))
	assert.True(t, calc.CalculateTotalDeductions(nil).IsZero())
}

func TestCalculateEffectiveTaxRate(t *testing.T) {
	calc := NewCalculator()

	rate := calc.CalculateEffectiveTaxRate(decimal.NewFromInt(100000), decimal.NewFromInt(1000000))
	assert.True(t, rate.Equal(decimal.NewFromInt(10)))

	// zero gross income is guarded, not a division fault
	rate = calc.CalculateEffectiveTaxRate(decimal.NewFromInt(100000), decimal.Zero)
	assert.True(t, rate.IsZero())
}

func TestCalculateComposesResponse(t *testing.T) {
	calc := NewCalculator()

	req := tax.CalculationRequest{
		EmployeeID:       "emp-1",
		FinancialYear:    "2024-2025",
		BasicSalary:      decimal.NewFromInt(900000),
		Allowances:       decimal.NewFromInt(200000),
		AdditionalIncome: decimal.NewFromInt(75000),
		Deductions: []tax.Deduction{
			{Section: "80C", Amount: decimal.NewFromInt(150000)},
			{Section: "80D", Amount: decimal.NewFromInt(25000)},
		},
	}

	resp, err := calc.Calculate(req)
	require.NoError(t, err)

	assert.True(t, resp.GrossIncome.Equal(decimal.NewFromInt(1175000)))
	assert.True(t, resp.TotalDeductions.Equal(decimal.NewFromInt(175000)))
	assert.True(t, resp.TaxableIncome.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, resp.TaxLiability.Equal(decimal.NewFromInt(112500)))
	assert.True(t, resp.NewRegimeTax.Equal(decimal.NewFromFloat(101250)))
	assert.Equal(t, tax.RegimeNew, resp.RecommendedRegime)
	assert.True(t, resp.PotentialSavings.Equal(decimal.NewFromFloat(11250)))
	assert.Equal(t, "2024-2025", resp.FinancialYear)
}

func TestCalculateFloorsTaxableIncomeAtZero(t *testing.T) {
	calc := NewCalculator()

	req := tax.CalculationRequest{
		EmployeeID:  "emp-1",
		BasicSalary: decimal.NewFromInt(100000),
		Deductions: []tax.Deduction{
			{Section: "80C", Amount: decimal.NewFromInt(150000)},
		},
	}

	resp, err := calc.Calculate(req)
	require.NoError(t, err)

	assert.True(t, resp.TaxableIncome.IsZero())
	assert.True(t, resp.TaxLiability.IsZero())
	assert.Equal(t, tax.RegimeOld, resp.RecommendedRegime, "equal liabilities recommend the old regime")
}

func TestCalculateRejectsNegativeInputs(t *testing.T) {
	calc := NewCalculator()

	req := tax.CalculationRequest{
		EmployeeID:  "emp-1",
		BasicSalary: decimal.NewFromInt(-1),
	}
	_, err := calc.Calculate(req)
	assert.Error(t, err)

	req = tax.CalculationRequest{
		BasicSalary: decimal.NewFromInt(100000),
	}
	_, err = calc.Calculate(req)
	assert.Error(t, err, "missing employee_id")
}
