package overtime

import (
	"context"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

type OvertimeRepository interface {
	Create(ctx context.Context, ot Overtime) (Overtime, error)

	GetByID(ctx context.Context, id string) (Overtime, error)

	// GetByEmployeeAndDate returns nil when no row exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date dateutil.Date) (*Overtime, error)

	// List applies the filter's non-zero predicates, newest date first.
	List(ctx context.Context, filter ListOvertimeFilter) ([]Overtime, error)

	// Update persists type, status and the credit/consumption flags.
	Update(ctx context.Context, ot Overtime) (Overtime, error)

	Delete(ctx context.Context, id string) error

	// Balance counts credited, not-yet-consumed days per type.
	Balance(ctx context.Context, employeeID string) (Balance, error)
}
