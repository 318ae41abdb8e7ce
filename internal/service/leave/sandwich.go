package leave

import (
	"fmt"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

// DefaultSandwichWindowDays bounds the scan for enclosing leave days on
// each side of a holiday.
const DefaultSandwichWindowDays = 7

// DetectSandwichDates returns the holiday dates in [from, to] that sit
// inside a leave block: the nearest leave day strictly before and
// strictly after must both exist within the window, reachable by
// crossing only other holidays. Any other day in between breaks the
// enclosure. isLeave reports whether the employee has approved leave on
// a date. window <= 0 falls back to DefaultSandwichWindowDays.
func DetectSandwichDates(from, to dateutil.Date, isLeave func(dateutil.Date) bool, registry *holiday.Registry, window int) ([]dateutil.Date, error) {
	if window <= 0 {
		window = DefaultSandwichWindowDays
	}

	dates, err := dateutil.ExpandRangeInclusive(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to expand sandwich scan range: %w", err)
	}

	const (
		kindOther = iota
		kindLeave
		kindHoliday
	)
	kinds := make([]int, len(dates))
	for i, d := range dates {
		switch {
		case isLeave(d):
			kinds[i] = kindLeave
		case registry.IsHoliday(d):
			kinds[i] = kindHoliday
		}
	}

	enclosed := func(i, dir int) bool {
		for step := 1; step <= window; step++ {
			j := i + dir*step
			if j < 0 || j >= len(kinds) {
				return false
			}
			switch kinds[j] {
			case kindLeave:
				return true
			case kindHoliday:
				continue
			default:
				return false
			}
		}
		return false
	}

	var sandwiched []dateutil.Date
	for i := range dates {
		if kinds[i] != kindHoliday {
			continue
		}
		if enclosed(i, -1) && enclosed(i, +1) {
			sandwiched = append(sandwiched, dates[i])
		}
	}
	return sandwiched, nil
}
