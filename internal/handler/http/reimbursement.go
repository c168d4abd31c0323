package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/handler/http/response"
	reimbursementservice "github.com/cmlabs-hris/payroll-engine-go/internal/service/reimbursement"
	"github.com/go-chi/chi/v5"
)

type ReimbursementHandler interface {
	Totals(w http.ResponseWriter, r *http.Request)
}

type reimbursementHandlerImpl struct {
	reimbursementService *reimbursementservice.Service
}

func NewReimbursementHandler(reimbursementService *reimbursementservice.Service) ReimbursementHandler {
	return &reimbursementHandlerImpl{reimbursementService: reimbursementService}
}

func (h *reimbursementHandlerImpl) Totals(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var start, end *time.Time
	if v := r.URL.Query().Get("start_date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "start_date must be YYYY-MM-DD", nil)
			return
		}
		start = &parsed
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "end_date must be YYYY-MM-DD", nil)
			return
		}
		end = &parsed
	}

	result, err := h.reimbursementService.Totals(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
