package reimbursement

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/reimbursement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func claim(amount int64, dateStr string, status reimbursement.Status) reimbursement.Record {
	d, _ := time.Parse("2006-01-02", dateStr)
	return reimbursement.Record{
		EmployeeID: "emp-1",
		Amount:     decimal.NewFromInt(amount),
		Date:       d,
		Status:     status,
	}
}

func TestCalculateTotalReimbursement(t *testing.T) {
	calc := NewCalculator()

	records := []reimbursement.Record{
		claim(1500, "2025-01-10", reimbursement.StatusApproved),
		claim(2500, "2025-02-15", reimbursement.StatusApproved),
		claim(800, "2025-03-20", reimbursement.StatusApproved),
		claim(9999, "2025-02-01", reimbursement.StatusPending),
		claim(500, "2025-02-02", reimbursement.StatusRejected),
	}

	// unfiltered
	assert.True(t, calc.CalculateTotalReimbursement(records, nil, nil).Equal(decimal.NewFromInt(4800)))

	// closed range keeps only the February claim
	start, _ := time.Parse("2006-01-02", "2025-02-01")
	end, _ := time.Parse("2006-01-02", "2025-02-28")
	assert.True(t, calc.CalculateTotalReimbursement(records, &start, &end).Equal(decimal.NewFromInt(2500)))

	// open-ended lower bound
	assert.True(t, calc.CalculateTotalReimbursement(records, &start, nil).Equal(decimal.NewFromInt(3300)))

	assert.True(t, calc.CalculateTotalReimbursement(nil, nil, nil).IsZero())
}

func TestCalculatePendingReimbursement(t *testing.T) {
	calc := NewCalculator()

	records := []reimbursement.Record{
		claim(1000, "2025-01-10", reimbursement.StatusPending),
		claim(2000, "2025-02-15", reimbursement.StatusPending),
		claim(700, "2025-02-20", reimbursement.StatusApproved),
	}

	assert.True(t, calc.CalculatePendingReimbursement(records).Equal(decimal.NewFromInt(3000)))
	assert.True(t, calc.CalculatePendingReimbursement(nil).IsZero())
}
