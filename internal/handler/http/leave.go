package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/handler/http/response"
	leaveservice "github.com/cmlabs-hris/payroll-engine-go/internal/service/leave"
	"github.com/go-chi/chi/v5"
)

// defaultAnnualLeaveQuota applies when the balance query does not carry an
// explicit quota.
const defaultAnnualLeaveQuota = 12

type LeaveHandler interface {
	Balance(w http.ResponseWriter, r *http.Request)
	CheckOverlap(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService *leaveservice.Service
}

func NewLeaveHandler(leaveService *leaveservice.Service) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

func (h *leaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		year = time.Now().Year()
	}
	quota := float64(defaultAnnualLeaveQuota)
	if v := r.URL.Query().Get("quota"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			quota = parsed
		}
	}

	result, err := h.leaveService.Balance(r.Context(), employeeID, year, quota)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

type checkOverlapRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (h *leaveHandlerImpl) CheckOverlap(w http.ResponseWriter, r *http.Request) {
	var req checkOverlapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	start, errS := time.Parse("2006-01-02", req.StartDate)
	end, errE := time.Parse("2006-01-02", req.EndDate)
	if req.EmployeeID == "" || errS != nil || errE != nil {
		response.BadRequest(w, "Employee ID, start_date and end_date (YYYY-MM-DD) are required", nil)
		return
	}

	result, err := h.leaveService.CheckOverlap(r.Context(), req.EmployeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
