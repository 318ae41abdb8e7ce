package attendance

import (
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_Additivity(t *testing.T) {
	// Mixed week: present, absent, leave, Sunday holiday.
	records := []attendance.DayRecord{
		presentRecord("2025-09-01", 9, 8.5),
		presentRecord("2025-09-02", 9, 9),
	}
	days := reconcileFor(t, "2025-09-01", "2025-09-07", records, holiday.NewRegistry(nil), "2025-09-04")

	s := Summarize(days)
	assert.Equal(t, len(days), s.PresentDays+s.AbsentDays+s.LeaveDays+s.HolidayDays)
	assert.Equal(t, 2, s.PresentDays)
	assert.Equal(t, 3, s.AbsentDays)
	assert.Equal(t, 1, s.LeaveDays)
	assert.Equal(t, 1, s.HolidayDays)
}

func TestSummarize_HourTotalsOnlyFromPresent(t *testing.T) {
	records := []attendance.DayRecord{
		presentRecord("2025-09-01", 9, 8.5),
		presentRecord("2025-09-02", 9, 7.5),
	}
	days := reconcileFor(t, "2025-09-01", "2025-09-07", records, holiday.NewRegistry(nil), "2025-09-04")

	s := Summarize(days)
	assert.Equal(t, 18.0, s.TotalWorkHours)
	assert.Equal(t, 16.0, s.TotalWorkedHours)
	assert.Equal(t, 2.0, s.TotalIdleHours)
}

func TestSummarize_HalfDayCounted(t *testing.T) {
	rec := presentRecord("2025-09-05", 4, 4)
	rec.IsHalfDay = true

	days := reconcileFor(t, "2025-09-05", "2025-09-05", []attendance.DayRecord{rec}, holiday.NewRegistry(nil))
	s := Summarize(days)

	assert.Equal(t, 1, s.PresentDays, "half days still count as present")
	assert.Equal(t, 1, s.HalfDays)
	assert.Equal(t, 4.0, s.TotalWorkHours)
	assert.Equal(t, 4.0, s.TotalWorkedHours)
	assert.Equal(t, 0.0, s.TotalIdleHours)
}

func TestSummarize_SandwichDaysCounted(t *testing.T) {
	registry := holiday.NewRegistry([]holiday.Holiday{
		{ID: "h1", Name: "Test Holiday", Date: date("2025-09-11")},
	})
	days := reconcileFor(t, "2025-09-08", "2025-09-14", nil, registry, "2025-09-10", "2025-09-12")

	entries := DetectSandwichLeaves(days, 0)
	require.Len(t, entries, 1)

	s := Summarize(days)
	assert.Equal(t, 1, s.SandwichDays)
	assert.Equal(t, 2, s.HolidayDays, "explicit holiday plus the Sunday")
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, attendance.MonthlySummary{}, s)
}

func TestSummarize_Idempotent(t *testing.T) {
	records := []attendance.DayRecord{presentRecord("2025-09-01", 9, 8.5)}
	days := reconcileFor(t, "2025-09-01", "2025-09-03", records, holiday.NewRegistry(nil))

	first := Summarize(days)
	second := Summarize(days)
	assert.Equal(t, first, second)
}
