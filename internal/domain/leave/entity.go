package leave

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// StatusAll is the sentinel accepted by list filters.
const StatusAll = "All"

type LeaveType string

const (
	LeaveTypeCasual LeaveType = "Casual"
	LeaveTypeSick   LeaveType = "Sick"
	LeaveTypeEarned LeaveType = "Earned"
	LeaveTypeUnpaid LeaveType = "Unpaid"
)

type LeaveDayType string

const (
	LeaveDayTypeFull LeaveDayType = "FullDay"
	LeaveDayTypeHalf LeaveDayType = "HalfDay"
)

type HalfDaySession string

const (
	HalfDaySessionMorning   HalfDaySession = "Morning"
	HalfDaySessionAfternoon HalfDaySession = "Afternoon"
)

type LeaveCategory string

const (
	LeaveCategoryPaid   LeaveCategory = "PAID"
	LeaveCategoryUnpaid LeaveCategory = "UNPAID"
)

// LeaveRequest covers a contiguous inclusive date range. Status is
// terminal once Approved or Rejected.
type LeaveRequest struct {
	ID         string
	EmployeeID string

	From dateutil.Date
	To   dateutil.Date

	Status         LeaveStatus
	LeaveType      LeaveType
	LeaveDayType   LeaveDayType
	HalfDaySession *HalfDaySession

	Reason    string
	LeaveDays float64

	RequestDate dateutil.Date
	ActionDate  *dateutil.Date

	Days []LeaveRequestDay

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// LeaveRequestDay is the per-date expansion of a request, carrying the
// paid/unpaid category and the sandwich flag once detection has run.
type LeaveRequestDay struct {
	ID             string
	LeaveRequestID string
	Date           dateutil.Date
	Category       LeaveCategory
	SandwichFlag   bool
}

// DailyLeave is the flattened per-day view consumed by the attendance
// reconciler. Only Approved requests produce these.
type DailyLeave struct {
	EmployeeID     string
	Date           dateutil.Date
	LeaveType      LeaveType
	Category       LeaveCategory
	HalfDaySession *HalfDaySession
}
