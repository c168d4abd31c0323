package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payout"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payoutRepository struct {
	db *database.DB
}

func NewPayoutRepository(db *database.DB) payout.Repository {
	return &payoutRepository{db: db}
}

const payoutColumns = `
	mp.id, mp.employee_id, mp.month, mp.year,
	mp.base_monthly_gross, mp.lwp_days, mp.lwp_factor, mp.adjusted_monthly_gross,
	mp.deductions, mp.total_monthly_deductions, mp.monthly_net_salary,
	mp.status,
	mp.computed_by, mp.computed_at, mp.approved_by, mp.approved_at,
	mp.rejected_by, mp.rejected_at, mp.rejection_reason,
	mp.salary_paid_by, mp.salary_paid_at, mp.salary_payment_reference,
	mp.tds_paid_by, mp.tds_paid_at, mp.tds_payment_reference,
	mp.created_at, mp.updated_at
`

// payoutColumnsBare is payoutColumns without the table alias, for
// RETURNING clauses on writes.
const payoutColumnsBare = `
	id, employee_id, month, year,
	base_monthly_gross, lwp_days, lwp_factor, adjusted_monthly_gross,
	deductions, total_monthly_deductions, monthly_net_salary,
	status,
	computed_by, computed_at, approved_by, approved_at,
	rejected_by, rejected_at, rejection_reason,
	salary_paid_by, salary_paid_at, salary_payment_reference,
	tds_paid_by, tds_paid_at, tds_payment_reference,
	created_at, updated_at
`

func scanPayout(row pgx.Row) (payout.MonthlyPayout, error) {
	var rec payout.MonthlyPayout
	var deductionsBytes []byte
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
		&rec.BaseMonthlyGross, &rec.LWPDays, &rec.LWPFactor, &rec.AdjustedMonthlyGross,
		&deductionsBytes, &rec.TotalMonthlyDeductions, &rec.MonthlyNetSalary,
		&rec.Status,
		&rec.ComputedBy, &rec.ComputedAt, &rec.ApprovedBy, &rec.ApprovedAt,
		&rec.RejectedBy, &rec.RejectedAt, &rec.RejectionReason,
		&rec.SalaryPaidBy, &rec.SalaryPaidAt, &rec.SalaryPaymentReference,
		&rec.TDSPaidBy, &rec.TDSPaidAt, &rec.TDSPaymentReference,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return payout.MonthlyPayout{}, err
	}
	_ = json.Unmarshal(deductionsBytes, &rec.Deductions)
	return rec, nil
}

func (r *payoutRepository) GetByKey(ctx context.Context, employeeID string, month, year int) (payout.MonthlyPayout, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, e.full_name as employee_name
		FROM monthly_payouts mp
		JOIN employees e ON mp.employee_id = e.id
		WHERE mp.employee_id = $1 AND mp.month = $2 AND mp.year = $3
	`, payoutColumns)

	var rec payout.MonthlyPayout
	var deductionsBytes []byte
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
		&rec.BaseMonthlyGross, &rec.LWPDays, &rec.LWPFactor, &rec.AdjustedMonthlyGross,
		&deductionsBytes, &rec.TotalMonthlyDeductions, &rec.MonthlyNetSalary,
		&rec.Status,
		&rec.ComputedBy, &rec.ComputedAt, &rec.ApprovedBy, &rec.ApprovedAt,
		&rec.RejectedBy, &rec.RejectedAt, &rec.RejectionReason,
		&rec.SalaryPaidBy, &rec.SalaryPaidAt, &rec.SalaryPaymentReference,
		&rec.TDSPaidBy, &rec.TDSPaidAt, &rec.TDSPaymentReference,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payout.MonthlyPayout{}, payout.ErrPayoutNotFound
		}
		return payout.MonthlyPayout{}, fmt.Errorf("failed to get payout record: %w", err)
	}

	_ = json.Unmarshal(deductionsBytes, &rec.Deductions)
	return rec, nil
}

func (r *payoutRepository) Upsert(ctx context.Context, rec payout.MonthlyPayout) (payout.MonthlyPayout, error) {
	q := GetQuerier(ctx, r.db)

	deductionsJSON, _ := json.Marshal(rec.Deductions)

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	query := fmt.Sprintf(`
		INSERT INTO monthly_payouts (
			id, employee_id, month, year,
			base_monthly_gross, lwp_days, lwp_factor, adjusted_monthly_gross,
			deductions, total_monthly_deductions, monthly_net_salary,
			status,
			computed_by, computed_at, approved_by, approved_at,
			rejected_by, rejected_at, rejection_reason,
			salary_paid_by, salary_paid_at, salary_payment_reference,
			tds_paid_by, tds_paid_at, tds_payment_reference
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			base_monthly_gross = EXCLUDED.base_monthly_gross,
			lwp_days = EXCLUDED.lwp_days,
			lwp_factor = EXCLUDED.lwp_factor,
			adjusted_monthly_gross = EXCLUDED.adjusted_monthly_gross,
			deductions = EXCLUDED.deductions,
			total_monthly_deductions = EXCLUDED.total_monthly_deductions,
			monthly_net_salary = EXCLUDED.monthly_net_salary,
			status = EXCLUDED.status,
			computed_by = EXCLUDED.computed_by,
			computed_at = EXCLUDED.computed_at,
			approved_by = EXCLUDED.approved_by,
			approved_at = EXCLUDED.approved_at,
			rejected_by = EXCLUDED.rejected_by,
			rejected_at = EXCLUDED.rejected_at,
			rejection_reason = EXCLUDED.rejection_reason,
			salary_paid_by = EXCLUDED.salary_paid_by,
			salary_paid_at = EXCLUDED.salary_paid_at,
			salary_payment_reference = EXCLUDED.salary_payment_reference,
			tds_paid_by = EXCLUDED.tds_paid_by,
			tds_paid_at = EXCLUDED.tds_paid_at,
			tds_payment_reference = EXCLUDED.tds_payment_reference,
			updated_at = NOW()
		RETURNING %s
	`, payoutColumnsBare)

	saved, err := scanPayout(q.QueryRow(ctx, query,
		id, rec.EmployeeID, rec.Month, rec.Year,
		rec.BaseMonthlyGross, rec.LWPDays, rec.LWPFactor, rec.AdjustedMonthlyGross,
		deductionsJSON, rec.TotalMonthlyDeductions, rec.MonthlyNetSalary,
		rec.Status,
		rec.ComputedBy, rec.ComputedAt, rec.ApprovedBy, rec.ApprovedAt,
		rec.RejectedBy, rec.RejectedAt, rec.RejectionReason,
		rec.SalaryPaidBy, rec.SalaryPaidAt, rec.SalaryPaymentReference,
		rec.TDSPaidBy, rec.TDSPaidAt, rec.TDSPaymentReference,
	))
	if err != nil {
		return payout.MonthlyPayout{}, fmt.Errorf("failed to upsert payout record: %w", err)
	}

	saved.EmployeeName = rec.EmployeeName
	return saved, nil
}

func (r *payoutRepository) Update(ctx context.Context, rec payout.MonthlyPayout) (payout.MonthlyPayout, error) {
	q := GetQuerier(ctx, r.db)

	deductionsJSON, _ := json.Marshal(rec.Deductions)

	query := fmt.Sprintf(`
		UPDATE monthly_payouts SET
			base_monthly_gross = $4,
			lwp_days = $5,
			lwp_factor = $6,
			adjusted_monthly_gross = $7,
			deductions = $8,
			total_monthly_deductions = $9,
			monthly_net_salary = $10,
			status = $11,
			computed_by = $12,
			computed_at = $13,
			approved_by = $14,
			approved_at = $15,
			rejected_by = $16,
			rejected_at = $17,
			rejection_reason = $18,
			salary_paid_by = $19,
			salary_paid_at = $20,
			salary_payment_reference = $21,
			tds_paid_by = $22,
			tds_paid_at = $23,
			tds_payment_reference = $24,
			updated_at = NOW()
		WHERE employee_id = $1 AND month = $2 AND year = $3
		RETURNING %s
	`, payoutColumnsBare)

	saved, err := scanPayout(q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Month, rec.Year,
		rec.BaseMonthlyGross, rec.LWPDays, rec.LWPFactor, rec.AdjustedMonthlyGross,
		deductionsJSON, rec.TotalMonthlyDeductions, rec.MonthlyNetSalary,
		rec.Status,
		rec.ComputedBy, rec.ComputedAt, rec.ApprovedBy, rec.ApprovedAt,
		rec.RejectedBy, rec.RejectedAt, rec.RejectionReason,
		rec.SalaryPaidBy, rec.SalaryPaidAt, rec.SalaryPaymentReference,
		rec.TDSPaidBy, rec.TDSPaidAt, rec.TDSPaymentReference,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payout.MonthlyPayout{}, payout.ErrPayoutNotFound
		}
		return payout.MonthlyPayout{}, fmt.Errorf("failed to update payout record: %w", err)
	}

	saved.EmployeeName = rec.EmployeeName
	return saved, nil
}

func (r *payoutRepository) List(ctx context.Context, filter payout.Filter) ([]payout.MonthlyPayout, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM monthly_payouts mp
		JOIN employees e ON mp.employee_id = e.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.Month != nil {
		baseQuery += fmt.Sprintf(" AND mp.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		baseQuery += fmt.Sprintf(" AND mp.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND mp.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND mp.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payout records: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s, e.full_name as employee_name
		%s
		ORDER BY mp.year DESC, mp.month DESC, e.full_name
		LIMIT $%d OFFSET $%d
	`, payoutColumns, baseQuery, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payout records: %w", err)
	}
	defer rows.Close()

	var records []payout.MonthlyPayout
	for rows.Next() {
		var rec payout.MonthlyPayout
		var deductionsBytes []byte
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
			&rec.BaseMonthlyGross, &rec.LWPDays, &rec.LWPFactor, &rec.AdjustedMonthlyGross,
			&deductionsBytes, &rec.TotalMonthlyDeductions, &rec.MonthlyNetSalary,
			&rec.Status,
			&rec.ComputedBy, &rec.ComputedAt, &rec.ApprovedBy, &rec.ApprovedAt,
			&rec.RejectedBy, &rec.RejectedAt, &rec.RejectionReason,
			&rec.SalaryPaidBy, &rec.SalaryPaidAt, &rec.SalaryPaymentReference,
			&rec.TDSPaidBy, &rec.TDSPaidAt, &rec.TDSPaymentReference,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payout record: %w", err)
		}
		_ = json.Unmarshal(deductionsBytes, &rec.Deductions)
		records = append(records, rec)
	}

	return records, totalCount, nil
}

func (r *payoutRepository) ListByPeriodStatuses(ctx context.Context, month, year int, statuses []payout.Status) ([]payout.MonthlyPayout, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, e.full_name as employee_name
		FROM monthly_payouts mp
		JOIN employees e ON mp.employee_id = e.id
		WHERE mp.month = $1 AND mp.year = $2
	`, payoutColumns)
	args := []interface{}{month, year}

	if len(statuses) > 0 {
		statusStrings := make([]string, 0, len(statuses))
		for _, s := range statuses {
			statusStrings = append(statusStrings, string(s))
		}
		query += " AND mp.status = ANY($3)"
		args = append(args, statusStrings)
	}
	query += " ORDER BY e.full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payout records: %w", err)
	}
	defer rows.Close()

	var records []payout.MonthlyPayout
	for rows.Next() {
		var rec payout.MonthlyPayout
		var deductionsBytes []byte
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
			&rec.BaseMonthlyGross, &rec.LWPDays, &rec.LWPFactor, &rec.AdjustedMonthlyGross,
			&deductionsBytes, &rec.TotalMonthlyDeductions, &rec.MonthlyNetSalary,
			&rec.Status,
			&rec.ComputedBy, &rec.ComputedAt, &rec.ApprovedBy, &rec.ApprovedAt,
			&rec.RejectedBy, &rec.RejectedAt, &rec.RejectionReason,
			&rec.SalaryPaidBy, &rec.SalaryPaidAt, &rec.SalaryPaymentReference,
			&rec.TDSPaidBy, &rec.TDSPaidAt, &rec.TDSPaymentReference,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payout record: %w", err)
		}
		_ = json.Unmarshal(deductionsBytes, &rec.Deductions)
		records = append(records, rec)
	}

	return records, nil
}
