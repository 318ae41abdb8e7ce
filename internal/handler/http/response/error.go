package response

import (
	"errors"
	"net/http"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/notice"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/overtime"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, dateutil.ErrInvalidRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayDateExists):
		Conflict(w, "A holiday already exists on that date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveOverlap):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrHalfDayMultipleDays):
		BadRequest(w, "Half-day leave must cover a single date", nil)
	case errors.Is(err, leave.ErrHalfDaySessionMissing):
		BadRequest(w, "Half-day leave requires a session", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrOvertimeAlreadyProcessed):
		Conflict(w, "Overtime request already processed")
	case errors.Is(err, overtime.ErrOvertimeDateExists):
		Conflict(w, "Overtime already exists for that date")
	case errors.Is(err, overtime.ErrOvertimeNotConsumable):
		Conflict(w, "Overtime day cannot be used as leave")

	// Notice domain errors
	case errors.Is(err, notice.ErrNoticeNotFound):
		NotFound(w, "Notice not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
