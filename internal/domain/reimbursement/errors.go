package reimbursement

import "errors"

var (
	ErrRecordNotFound = errors.New("reimbursement record not found")
	ErrNegativeAmount = errors.New("reimbursement amount must be non-negative")
)
