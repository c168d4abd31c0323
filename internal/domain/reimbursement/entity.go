package reimbursement

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Record is a reimbursement claim. Amount is always non-negative. Like
// leave records, a claim transitions out of pending exactly once.
type Record struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	Date       time.Time
	Category   *string
	Status     Status

	ApprovedBy *string
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
