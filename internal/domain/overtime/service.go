package overtime

import (
	"context"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

type OvertimeService interface {
	// Request files a pending overtime request for one day.
	Request(ctx context.Context, req RequestOvertimeRequest) (OvertimeResponse, error)

	// Approve settles a pending request, optionally changing its type.
	Approve(ctx context.Context, req ApproveOvertimeRequest) (OvertimeResponse, error)

	Reject(ctx context.Context, id string) (OvertimeResponse, error)

	List(ctx context.Context, filter ListOvertimeFilter) ([]OvertimeResponse, error)

	Delete(ctx context.Context, id string) error

	// CreditWorkedDay marks an approved overtime day as earned once the
	// punch-out shows enough worked hours. Reports whether a credit
	// happened; a day without an approved request is not an error.
	CreditWorkedDay(ctx context.Context, employeeID string, date dateutil.Date, workedHours float64) (bool, error)

	// UseAsLeave consumes one credited pending-OT day as compensatory
	// leave.
	UseAsLeave(ctx context.Context, id string) (OvertimeResponse, error)

	Balance(ctx context.Context, employeeID string) (BalanceResponse, error)
}
