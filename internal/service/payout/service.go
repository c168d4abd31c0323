package payout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payout"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
)

type ServiceImpl struct {
	payoutRepo   payout.Repository
	employeeRepo employee.Repository
}

func NewService(payoutRepo payout.Repository, employeeRepo employee.Repository) payout.Service {
	return &ServiceImpl{
		payoutRepo:   payoutRepo,
		employeeRepo: employeeRepo,
	}
}

// ========== SINGLE-RECORD OPERATIONS ==========

// Compute derives and persists one employee's payout for a period. An
// existing computed record is returned untouched unless ForceRecompute is
// set; a rejected record is always recomputed (that is the re-entry path).
// Approved and later statuses refuse compute: reject first.
func (s *ServiceImpl) Compute(ctx context.Context, req payout.ComputeRequest) (payout.Response, error) {
	rec, _, err := s.computePayout(ctx, req)
	if err != nil {
		return payout.Response{}, err
	}
	return mapToResponse(rec), nil
}

// Get returns the payout for a key. A key that was never computed yields a
// synthetic not_computed view rather than an error: absence of a stored
// record is a status, not a failure.
func (s *ServiceImpl) Get(ctx context.Context, employeeID string, month, year int) (payout.Response, error) {
	rec, err := s.payoutRepo.GetByKey(ctx, employeeID, month, year)
	if err != nil {
		if errors.Is(err, payout.ErrPayoutNotFound) {
			return mapToResponse(payout.MonthlyPayout{
				EmployeeID: employeeID,
				Month:      month,
				Year:       year,
				Status:     payout.StatusNotComputed,
			}), nil
		}
		return payout.Response{}, err
	}
	return mapToResponse(rec), nil
}

func (s *ServiceImpl) List(ctx context.Context, filter payout.Filter) (payout.ListResponse, error) {
	records, totalCount, err := s.payoutRepo.List(ctx, filter)
	if err != nil {
		return payout.ListResponse{}, err
	}
	return payout.ListResponse{
		Data:       mapToResponses(records),
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *ServiceImpl) Approve(ctx context.Context, req payout.TransitionRequest) (payout.Response, error) {
	return s.transition(ctx, req, payout.ActionApprove)
}

func (s *ServiceImpl) Reject(ctx context.Context, req payout.TransitionRequest) (payout.Response, error) {
	return s.transition(ctx, req, payout.ActionReject)
}

func (s *ServiceImpl) PaySalary(ctx context.Context, req payout.TransitionRequest) (payout.Response, error) {
	return s.transition(ctx, req, payout.ActionPaySalary)
}

func (s *ServiceImpl) PayTDS(ctx context.Context, req payout.TransitionRequest) (payout.Response, error) {
	return s.transition(ctx, req, payout.ActionPayTDS)
}

// transition loads, applies and persists a status-only action. An invalid
// action surfaces the transition error and leaves the record untouched.
func (s *ServiceImpl) transition(ctx context.Context, req payout.TransitionRequest, action payout.Action) (payout.Response, error) {
	rec, err := s.payoutRepo.GetByKey(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		if errors.Is(err, payout.ErrPayoutNotFound) {
			// Never computed: every status-only action is invalid.
			return payout.Response{}, &payout.InvalidTransitionError{
				From:   payout.StatusNotComputed,
				Action: action,
			}
		}
		return payout.Response{}, err
	}

	moved, err := payout.Apply(rec, action, payout.TransitionParams{
		Actor:            req.Actor,
		Reason:           req.Reason,
		PaymentReference: req.PaymentReference,
		At:               time.Now(),
	})
	if err != nil {
		return payout.Response{}, err
	}

	updated, err := s.payoutRepo.Update(ctx, moved)
	if err != nil {
		return payout.Response{}, fmt.Errorf("failed to update payout record: %w", err)
	}
	return mapToResponse(updated), nil
}

// ========== BULK OPERATIONS ==========

// BulkCompute computes each requested employee independently. One
// employee's failure is folded into the summary and never aborts the
// batch; a summary with successful = 0 is still a non-error return.
// Cancellation between iterations stops the loop and keeps applied items.
func (s *ServiceImpl) BulkCompute(ctx context.Context, req payout.BulkComputeRequest) (payout.BulkResult, error) {
	if err := req.Validate(); err != nil {
		return payout.BulkResult{}, err
	}

	ids := req.EmployeeIDs
	if len(ids) == 0 {
		var err error
		ids, err = s.employeeRepo.ListActiveIDs(ctx)
		if err != nil {
			return payout.BulkResult{}, fmt.Errorf("failed to list active employees: %w", err)
		}
	}

	result := payout.BulkResult{TotalRequested: len(ids)}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		itemReq := payout.ComputeRequest{
			EmployeeID:     id,
			Month:          req.Month,
			Year:           req.Year,
			ForceRecompute: req.ForceRecompute,
			ComputedBy:     req.ComputedBy,
		}
		if o, ok := req.Overrides[id]; ok {
			itemReq.BaseMonthlyGross = o.BaseMonthlyGross
			if o.LWPDays != nil {
				itemReq.LWPDays = *o.LWPDays
			}
			if o.Deductions != nil {
				itemReq.Deductions = *o.Deductions
			}
		}

		_, skipped, err := s.computePayout(ctx, itemReq)
		switch {
		case err != nil:
			result.Failed++
			result.Errors = append(result.Errors, payout.BulkError{EmployeeID: id, Error: err.Error()})
		case skipped:
			result.Skipped++
		default:
			result.Successful++
		}
	}
	return result, nil
}

// BulkApprove approves each employee's record for the period. Records not
// in an approvable status count as skipped, not failed.
func (s *ServiceImpl) BulkApprove(ctx context.Context, req payout.BulkTransitionRequest) (payout.BulkResult, error) {
	return s.bulkTransition(ctx, req, []payout.Action{payout.ActionApprove})
}

// BulkProcess settles both payment legs for each employee's record. An
// approved record is paid salary-leg first, then TDS; a record already
// holding one leg gets the other. Fully paid records are skipped.
func (s *ServiceImpl) BulkProcess(ctx context.Context, req payout.BulkTransitionRequest) (payout.BulkResult, error) {
	return s.bulkTransition(ctx, req, []payout.Action{payout.ActionPaySalary, payout.ActionPayTDS})
}

func (s *ServiceImpl) bulkTransition(ctx context.Context, req payout.BulkTransitionRequest, actions []payout.Action) (payout.BulkResult, error) {
	if err := req.Validate(); err != nil {
		return payout.BulkResult{}, err
	}

	records, err := s.eligibleRecords(ctx, req)
	if err != nil {
		return payout.BulkResult{}, err
	}

	params := payout.TransitionParams{
		Actor:            req.Actor,
		Reason:           req.Reason,
		PaymentReference: req.PaymentReference,
		At:               time.Now(),
	}

	result := payout.BulkResult{TotalRequested: len(records)}
	for _, item := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if item.err != nil {
			result.Failed++
			result.Errors = append(result.Errors, payout.BulkError{EmployeeID: item.employeeID, Error: item.err.Error()})
			continue
		}

		moved, applied := item.rec, 0
		for _, action := range actions {
			if !payout.CanApply(moved.Status, action) {
				continue
			}
			next, err := payout.Apply(moved, action, params)
			if err != nil {
				break
			}
			moved = next
			applied++
		}
		if applied == 0 {
			// Not in an eligible source status; excluded by rule, not an error.
			result.Skipped++
			continue
		}

		if _, err := s.payoutRepo.Update(ctx, moved); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, payout.BulkError{EmployeeID: item.employeeID, Error: err.Error()})
			continue
		}
		result.Successful++
	}
	return result, nil
}

type bulkItem struct {
	employeeID string
	rec        payout.MonthlyPayout
	err        error
}

// eligibleRecords resolves the batch's record set. With explicit employee
// IDs, each key is loaded individually so missing records surface as
// per-item failures; without them the period's stored records are taken
// wholesale.
func (s *ServiceImpl) eligibleRecords(ctx context.Context, req payout.BulkTransitionRequest) ([]bulkItem, error) {
	if len(req.EmployeeIDs) > 0 {
		items := make([]bulkItem, 0, len(req.EmployeeIDs))
		for _, id := range req.EmployeeIDs {
			rec, err := s.payoutRepo.GetByKey(ctx, id, req.Month, req.Year)
			items = append(items, bulkItem{employeeID: id, rec: rec, err: err})
		}
		return items, nil
	}

	records, err := s.payoutRepo.ListByPeriodStatuses(ctx, req.Month, req.Year, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list payout records: %w", err)
	}
	items := make([]bulkItem, 0, len(records))
	for _, rec := range records {
		items = append(items, bulkItem{employeeID: rec.EmployeeID, rec: rec})
	}
	return items, nil
}

// ========== COMPUTATION ==========

// computePayout is the shared compute/recompute path. The skipped return
// is true when an existing computed or settled record was left untouched
// because ForceRecompute was off; forcing a recompute on a settled record
// is an invalid transition, not a skip.
func (s *ServiceImpl) computePayout(ctx context.Context, req payout.ComputeRequest) (payout.MonthlyPayout, bool, error) {
	if err := req.Validate(); err != nil {
		return payout.MonthlyPayout{}, false, err
	}

	daysInMonth := decimal.NewFromInt(int64(dateutil.DaysInMonth(req.Year, time.Month(req.Month))))
	if req.LWPDays.GreaterThan(daysInMonth) {
		return payout.MonthlyPayout{}, false, payout.ErrInvalidLWPDays
	}

	current, err := s.payoutRepo.GetByKey(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		if !errors.Is(err, payout.ErrPayoutNotFound) {
			return payout.MonthlyPayout{}, false, fmt.Errorf("failed to load payout record: %w", err)
		}
		current = payout.MonthlyPayout{
			EmployeeID: req.EmployeeID,
			Month:      req.Month,
			Year:       req.Year,
			Status:     payout.StatusNotComputed,
		}
	}

	var action payout.Action
	switch current.Status {
	case payout.StatusNotComputed:
		action = payout.ActionCompute
	case payout.StatusComputed:
		if !req.ForceRecompute {
			return current, true, nil
		}
		action = payout.ActionRecompute
	case payout.StatusRejected:
		// Rejection's re-entry path; an explicit compute always proceeds.
		action = payout.ActionRecompute
	case payout.StatusPaid:
		if !req.ForceRecompute {
			// Settled records are excluded by rule.
			return current, true, nil
		}
		// Forcing a recompute on a settled record is a graph violation,
		// not an exclusion; surface it.
		return payout.MonthlyPayout{}, false, &payout.InvalidTransitionError{
			From:   current.Status,
			Action: payout.ActionRecompute,
		}
	default:
		// approved / salary_paid / tds_paid require an explicit reject first.
		return payout.MonthlyPayout{}, false, &payout.InvalidTransitionError{
			From:   current.Status,
			Action: payout.ActionRecompute,
		}
	}

	baseGross, err := s.resolveBaseGross(ctx, req)
	if err != nil {
		return payout.MonthlyPayout{}, false, err
	}

	// Derived figures are rebuilt as a whole on every compute; the net is
	// always adjusted gross minus total deductions, never patched.
	rec := current
	rec.BaseMonthlyGross = baseGross
	rec.LWPDays = req.LWPDays
	rec.LWPFactor = daysInMonth.Sub(req.LWPDays).Div(daysInMonth)
	rec.AdjustedMonthlyGross = baseGross.Mul(rec.LWPFactor)
	rec.Deductions = req.Deductions
	rec.TotalMonthlyDeductions = req.Deductions.Total()
	rec.MonthlyNetSalary = rec.AdjustedMonthlyGross.Sub(rec.TotalMonthlyDeductions)

	moved, err := payout.Apply(rec, action, payout.TransitionParams{
		Actor: req.ComputedBy,
		At:    time.Now(),
	})
	if err != nil {
		return payout.MonthlyPayout{}, false, err
	}

	saved, err := s.payoutRepo.Upsert(ctx, moved)
	if err != nil {
		return payout.MonthlyPayout{}, false, fmt.Errorf("failed to save payout record: %w", err)
	}
	return saved, false, nil
}

// resolveBaseGross prefers the request override, falling back to the
// employee's configured base salary. A missing configuration is the
// canonical per-item computation failure.
func (s *ServiceImpl) resolveBaseGross(ctx context.Context, req payout.ComputeRequest) (decimal.Decimal, error) {
	if req.BaseMonthlyGross != nil {
		return *req.BaseMonthlyGross, nil
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return decimal.Zero, err
	}
	if !emp.HasBaseSalary() {
		return decimal.Zero, employee.ErrNoBaseSalary
	}
	return *emp.BaseMonthlySalary, nil
}

// ========== HELPERS ==========

func mapToResponse(r payout.MonthlyPayout) payout.Response {
	return payout.Response{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Month:      r.Month,
		Year:       r.Year,

		BaseMonthlyGross:       r.BaseMonthlyGross,
		LWPDays:                r.LWPDays,
		LWPFactor:              r.LWPFactor,
		AdjustedMonthlyGross:   r.AdjustedMonthlyGross,
		Deductions:             r.Deductions,
		TotalMonthlyDeductions: r.TotalMonthlyDeductions,
		MonthlyNetSalary:       r.MonthlyNetSalary,

		Status:       r.Status,
		ValidActions: payout.ValidActions(r.Status),

		EmployeeName: r.EmployeeName,

		ComputedBy: r.ComputedBy,
		ComputedAt: formatTimePtr(r.ComputedAt),
		ApprovedBy: r.ApprovedBy,
		ApprovedAt: formatTimePtr(r.ApprovedAt),

		RejectedBy:      r.RejectedBy,
		RejectedAt:      formatTimePtr(r.RejectedAt),
		RejectionReason: r.RejectionReason,

		SalaryPaidBy:           r.SalaryPaidBy,
		SalaryPaidAt:           formatTimePtr(r.SalaryPaidAt),
		SalaryPaymentReference: r.SalaryPaymentReference,
		TDSPaidBy:              r.TDSPaidBy,
		TDSPaidAt:              formatTimePtr(r.TDSPaidAt),
		TDSPaymentReference:    r.TDSPaymentReference,
	}
}

func mapToResponses(records []payout.MonthlyPayout) []payout.Response {
	result := make([]payout.Response, 0, len(records))
	for _, r := range records {
		result = append(result, mapToResponse(r))
	}
	return result
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	str := t.Format(time.RFC3339)
	return &str
}
