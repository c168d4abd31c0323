package attendance

import "context"

// Repository is the HR data collaborator for attendance records.
type Repository interface {
	ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]Record, error)
}
