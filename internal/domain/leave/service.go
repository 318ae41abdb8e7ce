package leave

import (
	"context"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

// LeaveService defines business logic for leave lifecycle and views.
type LeaveService interface {
	// Apply validates and stores a new Pending request.
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveRequestResponse, error)

	// Approve moves a Pending request to Approved and expands its
	// per-day rows.
	Approve(ctx context.Context, id string) (LeaveRequestResponse, error)

	// Reject moves a Pending request to Rejected.
	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveRequestResponse, error)

	Get(ctx context.Context, id string) (LeaveRequestResponse, error)

	List(ctx context.Context, filter ListLeaveFilter) ([]LeaveRequestResponse, error)

	// DailyLeaveFor returns the flattened Approved per-day entries for
	// the employee across the range, for the attendance reconciler.
	DailyLeaveFor(ctx context.Context, employeeID string, from, to dateutil.Date) ([]DailyLeave, error)

	// Statistics computes the monthly paid/unpaid/sandwich rollup.
	Statistics(ctx context.Context, employeeID, month string) (MonthlyLeaveStatistics, error)
}
