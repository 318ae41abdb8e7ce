package attendance

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

type DayStatus string

const (
	StatusPresent DayStatus = "Present"
	StatusAbsent  DayStatus = "Absent"
	StatusLeave   DayStatus = "Leave"
	StatusHoliday DayStatus = "Holiday"
)

// DayRecord is a raw per-day attendance row as punched/approved. One
// record exists per (employee, date).
type DayRecord struct {
	ID         string
	EmployeeID string
	Date       dateutil.Date

	Status   DayStatus
	PunchIn  *string // "HH:MM", nil unless Present
	PunchOut *string

	WorkHours   float64
	WorkedHours float64
	IdleTime    float64

	IsHalfDay     bool
	IsLateLogin   bool
	IsOvertimeDay bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DaySource says which rule produced a reconciled day.
type DaySource string

const (
	SourceRawPunch       DaySource = "raw_punch"
	SourceDerivedHoliday DaySource = "derived_holiday"
	SourceDerivedLeave   DaySource = "derived_leave"
	SourceDerivedAbsent  DaySource = "derived_absent"
)

// ReconciledDay is the authoritative per-date status after merging
// holiday, leave and punch data. Derived, never persisted.
type ReconciledDay struct {
	Date   dateutil.Date
	Status DayStatus
	Source DaySource

	HolidayName    string
	LeaveType      leave.LeaveType
	LeaveCategory  leave.LeaveCategory
	HalfDaySession *leave.HalfDaySession

	PunchIn  *string
	PunchOut *string

	WorkHours   float64
	WorkedHours float64
	IdleTime    float64

	IsHalfDay     bool
	IsLateLogin   bool
	IsOvertimeDay bool

	Sandwiched bool
}

// SandwichLeaveEntry flags a holiday consumed between two approved
// leave blocks. From/To are the nearest enclosing leave dates.
type SandwichLeaveEntry struct {
	Date dateutil.Date
	From dateutil.Date
	To   dateutil.Date
}

// MonthlySummary is the aggregate view for dashboard cards. Derived,
// recomputed per query.
type MonthlySummary struct {
	PresentDays  int
	AbsentDays   int
	LeaveDays    int
	HolidayDays  int
	HalfDays     int
	SandwichDays int

	TotalWorkHours   float64
	TotalWorkedHours float64
	TotalIdleHours   float64
}
