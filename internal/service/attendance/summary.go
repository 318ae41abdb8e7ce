package attendance

import (
	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
)

// Summarize reduces a reconciled sequence to monthly counters in a
// single pass. Hours accumulate only for Present days (half days
// included); Holiday, Absent and Leave days contribute zero. Every day
// lands in exactly one of the four status counters, so
// present+absent+leave+holiday always equals len(days).
func Summarize(days []attendance.ReconciledDay) attendance.MonthlySummary {
	var s attendance.MonthlySummary
	for _, day := range days {
		switch day.Status {
		case attendance.StatusPresent:
			s.PresentDays++
			if day.IsHalfDay {
				s.HalfDays++
			}
			s.TotalWorkHours += day.WorkHours
			s.TotalWorkedHours += day.WorkedHours
			s.TotalIdleHours += day.IdleTime
		case attendance.StatusAbsent:
			s.AbsentDays++
		case attendance.StatusLeave:
			s.LeaveDays++
		case attendance.StatusHoliday:
			s.HolidayDays++
			if day.Sandwiched {
				s.SandwichDays++
			}
		}
	}
	return s
}
