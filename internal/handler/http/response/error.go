package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payout"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/reimbursement"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A transition refused by the lifecycle table carries its source status
	// and the attempted action; surface those.
	var transitionErr *payout.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		Conflict(w, transitionErr.Error())
		return
	}

	switch {
	// Payout domain errors
	case errors.Is(err, payout.ErrPayoutNotFound):
		NotFound(w, "Payout record not found")
	case errors.Is(err, payout.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, payout.ErrInvalidLWPDays):
		BadRequest(w, "LWP days exceed the days in the month", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoBaseSalary):
		BadRequest(w, "Employee has no base monthly salary configured", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidPeriod):
		BadRequest(w, "Invalid attendance period", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrRecordNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Reimbursement domain errors
	case errors.Is(err, reimbursement.ErrRecordNotFound):
		NotFound(w, "Reimbursement record not found")
	case errors.Is(err, reimbursement.ErrNegativeAmount):
		BadRequest(w, "Reimbursement amount must be non-negative", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
