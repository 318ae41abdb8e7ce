package report

import (
	"context"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

// MonthlyAttendanceRequest selects the employee and month to render.
type MonthlyAttendanceRequest struct {
	EmployeeID string
	Month      string // "YYYY-MM"
}

func (r MonthlyAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidMonthKey(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be YYYY-MM"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReportService renders downloadable documents.
type ReportService interface {
	// MonthlyAttendance renders the per-day reconciled sequence and
	// summary for one employee-month as a PDF. Returns the document
	// bytes and a suggested filename.
	MonthlyAttendance(ctx context.Context, req MonthlyAttendanceRequest) ([]byte, string, error)
}
