package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payout"
	"github.com/cmlabs-hris/payroll-engine-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayoutHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)

	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	PaySalary(w http.ResponseWriter, r *http.Request)
	PayTDS(w http.ResponseWriter, r *http.Request)

	BulkCompute(w http.ResponseWriter, r *http.Request)
	BulkApprove(w http.ResponseWriter, r *http.Request)
	BulkProcess(w http.ResponseWriter, r *http.Request)
}

type payoutHandlerImpl struct {
	payoutService payout.Service
}

func NewPayoutHandler(payoutService payout.Service) PayoutHandler {
	return &payoutHandlerImpl{payoutService: payoutService}
}

// actorID identifies who performed the operation for the audit trail.
// Callers send it in the X-Actor-ID header.
func actorID(r *http.Request) string {
	return r.Header.Get("X-Actor-ID")
}

// payoutKey parses the {employeeID}/{month}/{year} URL triple.
func payoutKey(r *http.Request) (string, int, int, bool) {
	employeeID := chi.URLParam(r, "employeeID")
	month, errM := strconv.Atoi(chi.URLParam(r, "month"))
	year, errY := strconv.Atoi(chi.URLParam(r, "year"))
	if employeeID == "" || errM != nil || errY != nil {
		return "", 0, 0, false
	}
	return employeeID, month, year, true
}

// ========== SINGLE RECORD ==========

func (h *payoutHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	var req payout.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ComputedBy = actorID(r)

	result, err := h.payoutService.Compute(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payoutHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, month, year, ok := payoutKey(r)
	if !ok {
		response.BadRequest(w, "Employee ID, month and year are required", nil)
		return
	}

	result, err := h.payoutService.Get(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payoutHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter payout.Filter

	query := r.URL.Query()
	if v := query.Get("month"); v != "" {
		if month, err := strconv.Atoi(v); err == nil {
			filter.Month = &month
		}
	}
	if v := query.Get("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			filter.Year = &year
		}
	}
	if v := query.Get("status"); v != "" {
		status := payout.Status(v)
		filter.Status = &status
	}
	if v := query.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	result, err := h.payoutService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if result.Limit > 0 {
		totalPages = int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	}
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

// ========== TRANSITIONS ==========

func (h *payoutHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.payoutService.Approve)
}

func (h *payoutHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.payoutService.Reject)
}

func (h *payoutHandlerImpl) PaySalary(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.payoutService.PaySalary)
}

func (h *payoutHandlerImpl) PayTDS(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.payoutService.PayTDS)
}

func (h *payoutHandlerImpl) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, req payout.TransitionRequest) (payout.Response, error),
) {
	employeeID, month, year, ok := payoutKey(r)
	if !ok {
		response.BadRequest(w, "Employee ID, month and year are required", nil)
		return
	}

	req := payout.TransitionRequest{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
		Actor:      actorID(r),
	}
	// Reason and payment reference are optional; an empty body is fine.
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	result, err := apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== BULK ==========

func (h *payoutHandlerImpl) BulkCompute(w http.ResponseWriter, r *http.Request) {
	var req payout.BulkComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ComputedBy = actorID(r)

	result, err := h.payoutService.BulkCompute(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payoutHandlerImpl) BulkApprove(w http.ResponseWriter, r *http.Request) {
	h.bulkTransition(w, r, h.payoutService.BulkApprove)
}

func (h *payoutHandlerImpl) BulkProcess(w http.ResponseWriter, r *http.Request) {
	h.bulkTransition(w, r, h.payoutService.BulkProcess)
}

func (h *payoutHandlerImpl) bulkTransition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, req payout.BulkTransitionRequest) (payout.BulkResult, error),
) {
	var req payout.BulkTransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.Actor = actorID(r)

	result, err := apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
