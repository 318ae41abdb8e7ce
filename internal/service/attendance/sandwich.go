package attendance

import (
	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
)

// DefaultSandwichWindowDays bounds the scan for enclosing leave days on
// each side of a holiday.
const DefaultSandwichWindowDays = 7

// DetectSandwichLeaves finds holidays that sit inside an approved-leave
// block: the nearest leave day strictly before and strictly after the
// holiday must both exist within the window, reachable by crossing only
// other holidays. A present or absent working day on either side breaks
// the enclosure. Matching days also get their Sandwiched flag set in
// place.
//
// days must be the ordered, gap-free output of Reconcile. window <= 0
// falls back to DefaultSandwichWindowDays.
func DetectSandwichLeaves(days []attendance.ReconciledDay, window int) []attendance.SandwichLeaveEntry {
	if window <= 0 {
		window = DefaultSandwichWindowDays
	}

	var entries []attendance.SandwichLeaveEntry
	for i := range days {
		if days[i].Status != attendance.StatusHoliday {
			continue
		}
		before, okBefore := nearestLeave(days, i, -1, window)
		after, okAfter := nearestLeave(days, i, +1, window)
		if !okBefore || !okAfter {
			continue
		}
		days[i].Sandwiched = true
		entries = append(entries, attendance.SandwichLeaveEntry{
			Date: days[i].Date,
			From: days[before].Date,
			To:   days[after].Date,
		})
	}
	return entries
}

// nearestLeave walks from index i in the given direction, crossing only
// holidays, until it finds a leave day within the window. Any other
// status, the range edge, or the window bound ends the scan.
func nearestLeave(days []attendance.ReconciledDay, i, dir, window int) (int, bool) {
	for step := 1; step <= window; step++ {
		j := i + dir*step
		if j < 0 || j >= len(days) {
			return 0, false
		}
		switch days[j].Status {
		case attendance.StatusLeave:
			return j, true
		case attendance.StatusHoliday:
			continue
		default:
			return 0, false
		}
	}
	return 0, false
}
