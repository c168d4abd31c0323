package reimbursement

import (
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/reimbursement"
	"github.com/shopspring/decimal"
)

type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// CalculateTotalReimbursement sums approved amounts, optionally restricted
// to the closed date range [start, end]. Nil bounds leave that side open.
func (c *Calculator) CalculateTotalReimbursement(records []reimbursement.Record, start, end *time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.Status != reimbursement.StatusApproved {
			continue
		}
		if start != nil && r.Date.Before(*start) {
			continue
		}
		if end != nil && r.Date.After(*end) {
			continue
		}
		total = total.Add(r.Amount)
	}
	return total
}

// CalculatePendingReimbursement sums pending amounts, unfiltered.
func (c *Calculator) CalculatePendingReimbursement(records []reimbursement.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.Status == reimbursement.StatusPending {
			total = total.Add(r.Amount)
		}
	}
	return total
}
