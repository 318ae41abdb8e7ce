package holiday

import (
	"context"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

// HolidayService defines business logic for the holiday calendar.
type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)

	Delete(ctx context.Context, id string) error

	// List returns all holidays sorted ascending by date.
	List(ctx context.Context) ([]HolidayResponse, error)

	// RegistryFor builds a point-in-time registry snapshot covering the
	// given range, for use by the attendance reconciler.
	RegistryFor(ctx context.Context, from, to dateutil.Date) (*Registry, error)
}
