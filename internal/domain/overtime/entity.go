package overtime

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

type OvertimeStatus string

const (
	OvertimeStatusPending  OvertimeStatus = "Pending"
	OvertimeStatusApproved OvertimeStatus = "Approved"
	OvertimeStatusRejected OvertimeStatus = "Rejected"
)

type OvertimeType string

const (
	// OvertimeTypePending accrues a compensatory day the employee can
	// later take as leave.
	OvertimeTypePending OvertimeType = "PendingOT"

	// OvertimeTypeIncentive accrues a day paid out with salary.
	OvertimeTypeIncentive OvertimeType = "IncentiveOT"
)

// Overtime is one requested or allocated overtime day. Credited flips
// when the approved day was actually worked; UsedAsLeave when a
// credited pending-OT day has been converted into compensatory leave.
type Overtime struct {
	ID           string
	EmployeeID   string
	EmployeeName *string
	Date         dateutil.Date
	Type         OvertimeType
	Status       OvertimeStatus
	Reason       string
	Credited     bool
	UsedAsLeave  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Balance is the count of credited, still-unconsumed overtime days.
type Balance struct {
	EmployeeID    string
	PendingDays   int
	IncentiveDays int
}
