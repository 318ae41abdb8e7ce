package leave

import (
	"context"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

// LeaveRequestRepository defines data access for leave requests and
// their per-day expansion rows.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List returns requests for the employee, newest first, with Days
	// populated. An empty employeeID returns every request.
	List(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListOverlapping returns non-rejected requests for the employee
	// whose range intersects [from, to].
	ListOverlapping(ctx context.Context, employeeID string, from, to dateutil.Date) ([]LeaveRequest, error)

	// ListApprovedInRange returns approved requests for the employee
	// whose range intersects [from, to], with Days populated.
	ListApprovedInRange(ctx context.Context, employeeID string, from, to dateutil.Date) ([]LeaveRequest, error)

	// UpdateStatus moves a request to a terminal state and stamps the
	// action date.
	UpdateStatus(ctx context.Context, id string, status LeaveStatus, actionDate dateutil.Date) error

	// ReplaceDays rewrites the per-day rows for a request.
	ReplaceDays(ctx context.Context, requestID string, days []LeaveRequestDay) error
}
