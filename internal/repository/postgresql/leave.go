package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	id, employee_id, start_date, end_date, status, reason,
	approved_by, approved_at, created_at, updated_at
`

func (r *leaveRepository) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	// A range touching the year counts, even when it starts or ends outside it.
	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests
		WHERE employee_id = $1
			AND EXTRACT(YEAR FROM start_date) <= $2
			AND EXTRACT(YEAR FROM end_date) >= $2
		ORDER BY start_date
	`, leaveColumns)

	return r.queryRecords(ctx, q, query, employeeID, year)
}

func (r *leaveRepository) ListApprovedByEmployee(ctx context.Context, employeeID string) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests
		WHERE employee_id = $1 AND status = 'approved'
		ORDER BY start_date
	`, leaveColumns)

	return r.queryRecords(ctx, q, query, employeeID)
}

func (r *leaveRepository) queryRecords(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.Record, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	var records []leave.Record
	for rows.Next() {
		var rec leave.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.StartDate, &rec.EndDate, &rec.Status, &rec.Reason,
			&rec.ApprovedBy, &rec.ApprovedAt, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
