package attendance

import (
	"errors"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployee = "EMP101"

func date(s string) dateutil.Date { return dateutil.MustParseDate(s) }

func presentRecord(day string, workHours, workedHours float64) attendance.DayRecord {
	in, out := "09:00", "18:00"
	return attendance.DayRecord{
		EmployeeID:  testEmployee,
		Date:        date(day),
		Status:      attendance.StatusPresent,
		PunchIn:     &in,
		PunchOut:    &out,
		WorkHours:   workHours,
		WorkedHours: workedHours,
	}
}

func approvedDailyLeave(days ...string) []leave.DailyLeave {
	var out []leave.DailyLeave
	for _, d := range days {
		out = append(out, leave.DailyLeave{
			EmployeeID: testEmployee,
			Date:       date(d),
			LeaveType:  leave.LeaveTypeCasual,
			Category:   leave.LeaveCategoryPaid,
		})
	}
	return out
}

func TestReconcile_InvalidRange(t *testing.T) {
	_, err := Reconcile(testEmployee, date("2025-09-05"), date("2025-09-01"), nil, holiday.NewRegistry(nil), nil)
	assert.True(t, errors.Is(err, dateutil.ErrInvalidRange))
}

func TestReconcile_SparseDataDefaultsToAbsent(t *testing.T) {
	days, err := Reconcile(testEmployee, date("2025-09-01"), date("2025-09-03"), nil, holiday.NewRegistry(nil), nil)
	require.NoError(t, err)
	require.Len(t, days, 3)

	for _, day := range days {
		assert.Equal(t, attendance.StatusAbsent, day.Status)
		assert.Equal(t, attendance.SourceDerivedAbsent, day.Source)
		assert.Zero(t, day.WorkHours)
	}
}

func TestReconcile_NoGapCoverage(t *testing.T) {
	// One raw record in a two-week range; output must still cover every
	// date exactly once, in order.
	records := []attendance.DayRecord{presentRecord("2025-09-10", 9, 8.5)}

	days, err := Reconcile(testEmployee, date("2025-09-01"), date("2025-09-14"), records, holiday.NewRegistry(nil), nil)
	require.NoError(t, err)
	require.Len(t, days, 14)

	seen := make(map[string]bool)
	expected := date("2025-09-01")
	for _, day := range days {
		assert.False(t, seen[day.Date.String()], "duplicate date %s", day.Date)
		seen[day.Date.String()] = true
		assert.True(t, day.Date.Equal(expected), "expected %s, got %s", expected, day.Date)
		expected = expected.AddDays(1)
	}
}

func TestReconcile_HolidayOverridesPunch(t *testing.T) {
	// A Present record on Sunday 2025-09-07 must still reconcile as
	// Holiday.
	records := []attendance.DayRecord{presentRecord("2025-09-07", 9, 8.5)}

	days, err := Reconcile(testEmployee, date("2025-09-07"), date("2025-09-07"), records, holiday.NewRegistry(nil), nil)
	require.NoError(t, err)
	require.Len(t, days, 1)

	assert.Equal(t, attendance.StatusHoliday, days[0].Status)
	assert.Equal(t, attendance.SourceDerivedHoliday, days[0].Source)
	assert.Equal(t, holiday.WeeklyHolidayName, days[0].HolidayName)
	assert.Nil(t, days[0].PunchIn)
	assert.Zero(t, days[0].WorkHours)
}

func TestReconcile_HolidayOverridesLeave(t *testing.T) {
	// Approved leave spanning 2025-09-05..09; Sunday the 7th stays
	// Holiday, the working days around it become Leave.
	daily := approvedDailyLeave("2025-09-05", "2025-09-06", "2025-09-07", "2025-09-08", "2025-09-09")

	days, err := Reconcile(testEmployee, date("2025-09-05"), date("2025-09-09"), nil, holiday.NewRegistry(nil), daily)
	require.NoError(t, err)
	require.Len(t, days, 5)

	byDate := make(map[string]attendance.ReconciledDay)
	for _, d := range days {
		byDate[d.Date.String()] = d
	}

	assert.Equal(t, attendance.StatusHoliday, byDate["2025-09-07"].Status)
	assert.Equal(t, attendance.StatusLeave, byDate["2025-09-05"].Status)
	assert.Equal(t, attendance.StatusLeave, byDate["2025-09-06"].Status)
	assert.Equal(t, attendance.StatusLeave, byDate["2025-09-08"].Status)
	assert.Equal(t, attendance.StatusLeave, byDate["2025-09-09"].Status)
	assert.Equal(t, leave.LeaveCategoryPaid, byDate["2025-09-08"].LeaveCategory)
}

func TestReconcile_LeaveOverridesRecord(t *testing.T) {
	records := []attendance.DayRecord{presentRecord("2025-09-10", 9, 8.5)}
	daily := approvedDailyLeave("2025-09-10")

	days, err := Reconcile(testEmployee, date("2025-09-10"), date("2025-09-10"), records, holiday.NewRegistry(nil), daily)
	require.NoError(t, err)
	require.Len(t, days, 1)

	assert.Equal(t, attendance.StatusLeave, days[0].Status)
	assert.Equal(t, attendance.SourceDerivedLeave, days[0].Source)
}

func TestReconcile_RawRecordVerbatim(t *testing.T) {
	rec := presentRecord("2025-09-10", 9, 7.5)
	rec.IsLateLogin = true

	days, err := Reconcile(testEmployee, date("2025-09-10"), date("2025-09-10"), []attendance.DayRecord{rec}, holiday.NewRegistry(nil), nil)
	require.NoError(t, err)
	require.Len(t, days, 1)

	day := days[0]
	assert.Equal(t, attendance.StatusPresent, day.Status)
	assert.Equal(t, attendance.SourceRawPunch, day.Source)
	assert.Equal(t, "09:00", *day.PunchIn)
	assert.Equal(t, 9.0, day.WorkHours)
	assert.Equal(t, 7.5, day.WorkedHours)
	assert.Equal(t, 1.5, day.IdleTime)
	assert.True(t, day.IsLateLogin)
}

func TestReconcile_IdleTimeNeverNegative(t *testing.T) {
	// Overtime day: worked more than scheduled.
	rec := presentRecord("2025-09-10", 9, 11.5)
	rec.IsOvertimeDay = true

	days, err := Reconcile(testEmployee, date("2025-09-10"), date("2025-09-10"), []attendance.DayRecord{rec}, holiday.NewRegistry(nil), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, days[0].IdleTime)
}

func TestReconcile_HalfDayAnnotation(t *testing.T) {
	rec := presentRecord("2025-09-10", 4, 4)
	rec.IsHalfDay = true

	days, err := Reconcile(testEmployee, date("2025-09-10"), date("2025-09-10"), []attendance.DayRecord{rec}, holiday.NewRegistry(nil), nil)
	require.NoError(t, err)

	day := days[0]
	assert.Equal(t, attendance.StatusPresent, day.Status)
	assert.True(t, day.IsHalfDay)
	assert.Equal(t, 0.0, day.IdleTime)
}

func TestReconcile_NonPresentRecordDropsPunchData(t *testing.T) {
	in := "09:00"
	rec := attendance.DayRecord{
		EmployeeID: testEmployee,
		Date:       date("2025-09-10"),
		Status:     attendance.StatusAbsent,
		PunchIn:    &in,
		WorkHours:  9,
	}

	days, err := Reconcile(testEmployee, date("2025-09-10"), date("2025-09-10"), []attendance.DayRecord{rec}, holiday.NewRegistry(nil), nil)
	require.NoError(t, err)

	day := days[0]
	assert.Equal(t, attendance.StatusAbsent, day.Status)
	assert.Equal(t, attendance.SourceRawPunch, day.Source)
	assert.Nil(t, day.PunchIn)
	assert.Zero(t, day.WorkHours)
}

func TestReconcile_OtherEmployeeDataIgnored(t *testing.T) {
	other := presentRecord("2025-09-10", 9, 8.5)
	other.EmployeeID = "EMP999"
	otherLeave := []leave.DailyLeave{{EmployeeID: "EMP999", Date: date("2025-09-11"), LeaveType: leave.LeaveTypeSick}}

	days, err := Reconcile(testEmployee, date("2025-09-10"), date("2025-09-11"), []attendance.DayRecord{other}, holiday.NewRegistry(nil), otherLeave)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusAbsent, days[0].Status)
	assert.Equal(t, attendance.StatusAbsent, days[1].Status)
}

func TestReconcile_ExplicitHolidayNamed(t *testing.T) {
	registry := holiday.NewRegistry([]holiday.Holiday{
		{ID: "h1", Name: "Independence Day", Date: date("2025-08-15")},
	})

	days, err := Reconcile(testEmployee, date("2025-08-15"), date("2025-08-15"), nil, registry, nil)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusHoliday, days[0].Status)
	assert.Equal(t, "Independence Day", days[0].HolidayName)
}

func TestReconcile_Deterministic(t *testing.T) {
	records := []attendance.DayRecord{
		presentRecord("2025-09-01", 9, 8.5),
		presentRecord("2025-09-03", 9, 7.5),
	}
	daily := approvedDailyLeave("2025-09-04")
	registry := holiday.NewRegistry([]holiday.Holiday{
		{ID: "h1", Name: "Test Holiday", Date: date("2025-09-02")},
	})

	first, err := Reconcile(testEmployee, date("2025-09-01"), date("2025-09-05"), records, registry, daily)
	require.NoError(t, err)
	second, err := Reconcile(testEmployee, date("2025-09-01"), date("2025-09-05"), records, registry, daily)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
