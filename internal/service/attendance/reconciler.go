package attendance

import (
	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

// Reconcile merges raw day records, the holiday registry and approved
// daily leave into one gap-free status sequence for [from, to].
//
// Priority per date, highest first:
//  1. holiday (Sundays and explicit entries), punches notwithstanding
//  2. approved leave
//  3. raw record, taken verbatim
//  4. Absent
//
// Pure: no I/O, deterministic for identical snapshots. Missing
// employees are not an error; with no matching records the output is
// all Absent/Holiday, which is the correct view for a new hire.
func Reconcile(
	employeeID string,
	from, to dateutil.Date,
	records []attendance.DayRecord,
	registry *holiday.Registry,
	dailyLeave []leave.DailyLeave,
) ([]attendance.ReconciledDay, error) {
	dates, err := dateutil.ExpandRangeInclusive(from, to)
	if err != nil {
		return nil, err
	}

	recordsByDate := make(map[string]attendance.DayRecord, len(records))
	for _, rec := range records {
		if rec.EmployeeID != employeeID {
			continue
		}
		recordsByDate[rec.Date.String()] = rec
	}

	leaveByDate := make(map[string]leave.DailyLeave, len(dailyLeave))
	for _, dl := range dailyLeave {
		if dl.EmployeeID != employeeID {
			continue
		}
		leaveByDate[dl.Date.String()] = dl
	}

	days := make([]attendance.ReconciledDay, 0, len(dates))
	for _, d := range dates {
		days = append(days, reconcileDay(d, recordsByDate, registry, leaveByDate))
	}
	return days, nil
}

func reconcileDay(
	d dateutil.Date,
	records map[string]attendance.DayRecord,
	registry *holiday.Registry,
	leaves map[string]leave.DailyLeave,
) attendance.ReconciledDay {
	key := d.String()

	if registry.IsHoliday(d) {
		return attendance.ReconciledDay{
			Date:        d,
			Status:      attendance.StatusHoliday,
			Source:      attendance.SourceDerivedHoliday,
			HolidayName: registry.Name(d),
		}
	}

	if dl, ok := leaves[key]; ok {
		return attendance.ReconciledDay{
			Date:           d,
			Status:         attendance.StatusLeave,
			Source:         attendance.SourceDerivedLeave,
			LeaveType:      dl.LeaveType,
			LeaveCategory:  dl.Category,
			HalfDaySession: dl.HalfDaySession,
		}
	}

	if rec, ok := records[key]; ok {
		day := attendance.ReconciledDay{
			Date:          d,
			Status:        rec.Status,
			Source:        attendance.SourceRawPunch,
			PunchIn:       rec.PunchIn,
			PunchOut:      rec.PunchOut,
			WorkHours:     rec.WorkHours,
			WorkedHours:   rec.WorkedHours,
			IdleTime:      idleTime(rec.WorkHours, rec.WorkedHours),
			IsHalfDay:     rec.IsHalfDay,
			IsLateLogin:   rec.IsLateLogin,
			IsOvertimeDay: rec.IsOvertimeDay,
		}
		if rec.Status != attendance.StatusPresent {
			// Non-present records carry no punch or hour data.
			day.PunchIn = nil
			day.PunchOut = nil
			day.WorkHours = 0
			day.WorkedHours = 0
			day.IdleTime = 0
		}
		return day
	}

	return attendance.ReconciledDay{
		Date:   d,
		Status: attendance.StatusAbsent,
		Source: attendance.SourceDerivedAbsent,
	}
}

func idleTime(workHours, workedHours float64) float64 {
	idle := workHours - workedHours
	if idle < 0 {
		return 0
	}
	return idle
}
