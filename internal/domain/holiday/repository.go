package holiday

import (
	"context"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

// HolidayRepository defines data access methods for holiday entries.
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)

	GetByID(ctx context.Context, id string) (Holiday, error)

	// GetByDate returns the explicit entry on a date, nil when none exists.
	GetByDate(ctx context.Context, d dateutil.Date) (*Holiday, error)

	// List returns all entries sorted ascending by date.
	List(ctx context.Context) ([]Holiday, error)

	// ListBetween returns entries with from <= date <= to, sorted ascending.
	ListBetween(ctx context.Context, from, to dateutil.Date) ([]Holiday, error)

	Update(ctx context.Context, h Holiday) error

	Delete(ctx context.Context, id string) error
}
