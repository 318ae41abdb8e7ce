package overtime

import (
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

type RequestOvertimeRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	Reason     string `json:"reason"`
}

func (r RequestOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must look like EMP001"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.Type, []string{string(OvertimeTypePending), string(OvertimeTypeIncentive)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown overtime type"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApproveOvertimeRequest carries the final type the admin settles on;
// an empty Type keeps the requested one.
type ApproveOvertimeRequest struct {
	ID   string `json:"-"`
	Type string `json:"type"`
}

func (r ApproveOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Type != "" && !validator.IsInSlice(r.Type, []string{string(OvertimeTypePending), string(OvertimeTypeIncentive)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown overtime type"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListOvertimeFilter narrows the listing; zero values bypass their
// predicate.
type ListOvertimeFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Status     string
}

func (f ListOvertimeFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		}
	}
	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OvertimeResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	Reason       string  `json:"reason,omitempty"`
	Credited     bool    `json:"credited"`
	UsedAsLeave  bool    `json:"used_as_leave"`
}

type BalanceResponse struct {
	EmployeeID    string `json:"employee_id"`
	PendingDays   int    `json:"pending_ot_days"`
	IncentiveDays int    `json:"incentive_ot_days"`
}
