package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/reimbursement"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/database"
)

type reimbursementRepository struct {
	db *database.DB
}

func NewReimbursementRepository(db *database.DB) reimbursement.Repository {
	return &reimbursementRepository{db: db}
}

func (r *reimbursementRepository) ListByEmployee(ctx context.Context, employeeID string) ([]reimbursement.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, date, category, status,
			   approved_by, approved_at, created_at, updated_at
		FROM reimbursements
		WHERE employee_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reimbursement records: %w", err)
	}
	defer rows.Close()

	var records []reimbursement.Record
	for rows.Next() {
		var rec reimbursement.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Amount, &rec.Date, &rec.Category, &rec.Status,
			&rec.ApprovedBy, &rec.ApprovedAt, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reimbursement record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
