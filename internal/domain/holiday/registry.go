package holiday

import (
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

// WeeklyHolidayName is the derived name for Sundays. Sundays are never
// stored; an explicit entry on a Sunday wins over the derived name.
const WeeklyHolidayName = "Sunday"

// Registry answers holiday queries over an immutable snapshot of
// explicit holiday entries. Every Sunday is a holiday in addition to
// the explicit dates.
type Registry struct {
	byDate map[string]Holiday
}

// NewRegistry builds a registry from a snapshot. When the snapshot
// contains duplicate dates the last entry wins; repositories enforce
// date uniqueness so this only matters for hand-built snapshots.
func NewRegistry(snapshot []Holiday) *Registry {
	byDate := make(map[string]Holiday, len(snapshot))
	for _, h := range snapshot {
		byDate[h.Date.String()] = h
	}
	return &Registry{byDate: byDate}
}

// IsHoliday reports whether d is a Sunday or an explicit holiday.
func (r *Registry) IsHoliday(d dateutil.Date) bool {
	if dateutil.DayOfWeek(d) == 0 {
		return true
	}
	_, ok := r.byDate[d.String()]
	return ok
}

// Name returns the explicit holiday name for d if one exists, the
// weekly holiday name if d is a Sunday, and "" otherwise.
func (r *Registry) Name(d dateutil.Date) string {
	if h, ok := r.byDate[d.String()]; ok {
		return h.Name
	}
	if dateutil.DayOfWeek(d) == 0 {
		return WeeklyHolidayName
	}
	return ""
}

// Get returns the explicit entry for d, if any.
func (r *Registry) Get(d dateutil.Date) (Holiday, bool) {
	h, ok := r.byDate[d.String()]
	return h, ok
}
