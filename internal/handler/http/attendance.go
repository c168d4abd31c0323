package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/payroll-engine-go/internal/handler/http/response"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/geo"
	attendanceservice "github.com/cmlabs-hris/payroll-engine-go/internal/service/attendance"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	PeriodSummary(w http.ResponseWriter, r *http.Request)
	ValidateLocation(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendanceservice.Service
}

func NewAttendanceHandler(attendanceService *attendanceservice.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month, errM := strconv.Atoi(r.URL.Query().Get("month"))
	year, errY := strconv.Atoi(r.URL.Query().Get("year"))
	if employeeID == "" || errM != nil || errY != nil {
		response.BadRequest(w, "Employee ID, month and year are required", nil)
		return
	}

	result, err := h.attendanceService.PeriodSummary(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

type validateLocationRequest struct {
	Location     geo.Location `json:"location"`
	Office       geo.Point    `json:"office"`
	RadiusMeters *float64     `json:"radius_meters,omitempty"`
}

type validateLocationResponse struct {
	DistanceMeters float64 `json:"distance_meters"`
	WithinGeofence bool    `json:"within_geofence"`
	Accurate       bool    `json:"accurate"`
	Valid          bool    `json:"valid"`
}

// ValidateLocation checks a reported check-in position against an office
// geofence. The position must be inside the radius and the device accuracy
// within tolerance for the check-in to be valid.
func (h *attendanceHandlerImpl) ValidateLocation(w http.ResponseWriter, r *http.Request) {
	var req validateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	radius := float64(geo.DefaultGeofenceRadiusMeters)
	if req.RadiusMeters != nil {
		radius = *req.RadiusMeters
	}

	result := validateLocationResponse{
		DistanceMeters: geo.Distance(req.Location.Point, req.Office),
		WithinGeofence: geo.WithinGeofence(req.Location.Point, req.Office, radius),
		Accurate:       geo.IsAccurate(req.Location, geo.DefaultRequiredAccuracyMeters),
	}
	result.Valid = result.WithinGeofence && result.Accurate

	response.Success(w, result)
}
