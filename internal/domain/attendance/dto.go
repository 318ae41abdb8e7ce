package attendance

import (
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

// UpsertDayRecordRequest creates or replaces the raw record for an
// (employee, date) pair. Punch/hour fields only apply to Present days.
// Late-login and overtime flags are derived server-side, not accepted
// from the client.
type UpsertDayRecordRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	PunchIn    *string `json:"punch_in,omitempty"`
	PunchOut   *string `json:"punch_out,omitempty"`

	WorkHours   float64 `json:"work_hours"`
	WorkedHours float64 `json:"worked_hours"`

	IsHalfDay bool `json:"is_half_day"`
}

func (r UpsertDayRecordRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must look like EMP001"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	validStatuses := []string{
		string(StatusPresent), string(StatusAbsent),
		string(StatusLeave), string(StatusHoliday),
	}
	if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}
	if r.PunchIn != nil && !validator.IsValidClockTime(*r.PunchIn) {
		errs = append(errs, validator.ValidationError{Field: "punch_in", Message: "punch_in must be HH:MM"})
	}
	if r.PunchOut != nil && !validator.IsValidClockTime(*r.PunchOut) {
		errs = append(errs, validator.ValidationError{Field: "punch_out", Message: "punch_out must be HH:MM"})
	}
	if r.WorkHours < 0 || r.WorkedHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "work_hours", Message: "hours must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RangeQuery selects an employee and an inclusive date range.
type RangeQuery struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (q RangeQuery) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(q.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(q.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(q.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthQuery selects an employee and a calendar month.
type MonthQuery struct {
	EmployeeID string
	Month      string // "YYYY-MM"
}

func (q MonthQuery) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(q.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidMonthKey(q.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be YYYY-MM"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayRecordResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	PunchIn    *string `json:"punch_in,omitempty"`
	PunchOut   *string `json:"punch_out,omitempty"`

	WorkHours   float64 `json:"work_hours"`
	WorkedHours float64 `json:"worked_hours"`
	IdleTime    float64 `json:"idle_time"`

	IsHalfDay     bool `json:"is_half_day"`
	IsLateLogin   bool `json:"is_late_login"`
	IsOvertimeDay bool `json:"is_overtime_day"`
}

type ReconciledDayResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Source string `json:"source"`

	HolidayName    string  `json:"holiday_name,omitempty"`
	LeaveType      string  `json:"leave_type,omitempty"`
	LeaveCategory  string  `json:"leave_category,omitempty"`
	HalfDaySession *string `json:"half_day_session,omitempty"`

	PunchIn  *string `json:"punch_in,omitempty"`
	PunchOut *string `json:"punch_out,omitempty"`

	WorkHours   float64 `json:"work_hours"`
	WorkedHours float64 `json:"worked_hours"`
	IdleTime    float64 `json:"idle_time"`

	IsHalfDay     bool `json:"is_half_day"`
	IsLateLogin   bool `json:"is_late_login"`
	IsOvertimeDay bool `json:"is_overtime_day"`
	Sandwiched    bool `json:"sandwiched"`
}

type SandwichLeaveEntryResponse struct {
	Date    string `json:"date"`
	From    string `json:"from"`
	To      string `json:"to"`
	Message string `json:"message"`
}

type MonthlySummaryResponse struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`

	PresentDays  int `json:"present_days"`
	AbsentDays   int `json:"absent_days"`
	LeaveDays    int `json:"leave_days"`
	HolidayDays  int `json:"holiday_days"`
	HalfDays     int `json:"half_days"`
	SandwichDays int `json:"sandwich_days"`

	TotalWorkHours   float64 `json:"total_work_hours"`
	TotalWorkedHours float64 `json:"total_worked_hours"`
	TotalIdleHours   float64 `json:"total_idle_hours"`
}

// PunchStatusResponse is today's record for an employee, or status
// Absent with no punches when none exists yet.
type PunchStatusResponse struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	PunchIn    *string `json:"punch_in,omitempty"`
	PunchOut   *string `json:"punch_out,omitempty"`
}
