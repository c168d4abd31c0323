package leave

import "context"

// Repository is the HR data collaborator for leave records.
type Repository interface {
	ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]Record, error)
	ListApprovedByEmployee(ctx context.Context, employeeID string) ([]Record, error)
}
