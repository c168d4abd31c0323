package reimbursement

import "context"

// Repository is the HR data collaborator for reimbursement claims.
type Repository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
}
