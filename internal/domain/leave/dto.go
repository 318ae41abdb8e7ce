package leave

import (
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeID     string  `json:"employee_id"`
	From           string  `json:"from"`
	To             string  `json:"to"`
	LeaveType      string  `json:"leave_type"`
	LeaveDayType   string  `json:"leave_day_type"`
	HalfDaySession *string `json:"half_day_session,omitempty"`
	Reason         string  `json:"reason"`
}

func (r ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must look like EMP001"})
	}
	if _, ok := validator.IsValidDate(r.From); !ok {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.To); !ok {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be YYYY-MM-DD"})
	}
	validTypes := []string{
		string(LeaveTypeCasual), string(LeaveTypeSick),
		string(LeaveTypeEarned), string(LeaveTypeUnpaid),
	}
	if !validator.IsInSlice(r.LeaveType, validTypes) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "unknown leave type"})
	}
	if r.LeaveDayType != "" && !validator.IsInSlice(r.LeaveDayType, []string{string(LeaveDayTypeFull), string(LeaveDayTypeHalf)}) {
		errs = append(errs, validator.ValidationError{Field: "leave_day_type", Message: "unknown leave day type"})
	}
	if r.HalfDaySession != nil && !validator.IsInSlice(*r.HalfDaySession, []string{string(HalfDaySessionMorning), string(HalfDaySessionAfternoon)}) {
		errs = append(errs, validator.ValidationError{Field: "half_day_session", Message: "session must be Morning or Afternoon"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

// ListLeaveFilter carries the month/status/type filter predicates.
// Empty or "All" values bypass the corresponding predicate.
type ListLeaveFilter struct {
	EmployeeID string
	Month      string // "YYYY-MM", matched against the request From date
	Status     string
	LeaveType  string
}

func (f ListLeaveFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Month != "" && f.Month != StatusAll && !validator.IsValidMonthKey(f.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be YYYY-MM"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestDayResponse struct {
	Date         string `json:"date"`
	Category     string `json:"category"`
	SandwichFlag bool   `json:"sandwich_flag"`
}

type LeaveRequestResponse struct {
	ID             string                    `json:"id"`
	EmployeeID     string                    `json:"employee_id"`
	EmployeeName   *string                   `json:"employee_name,omitempty"`
	From           string                    `json:"from"`
	To             string                    `json:"to"`
	Status         string                    `json:"status"`
	LeaveType      string                    `json:"leave_type"`
	LeaveDayType   string                    `json:"leave_day_type"`
	HalfDaySession *string                   `json:"half_day_session,omitempty"`
	Reason         string                    `json:"reason"`
	LeaveDays      float64                   `json:"leave_days"`
	RequestDate    string                    `json:"request_date"`
	ActionDate     *string                   `json:"action_date,omitempty"`
	Days           []LeaveRequestDayResponse `json:"days,omitempty"`
}

// MonthlyLeaveStatistics is the per-month rollup shown on dashboards.
// Day totals are decimal strings so half days stay exact.
type MonthlyLeaveStatistics struct {
	EmployeeID     string `json:"employee_id"`
	Month          string `json:"month"`
	PaidLeaves     string `json:"paid_leaves"`
	UnpaidLeaves   string `json:"unpaid_leaves"`
	SandwichLeaves string `json:"sandwich_leaves"`
	TotalLeaves    string `json:"total_leaves"`
}
