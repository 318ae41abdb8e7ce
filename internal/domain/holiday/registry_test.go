package holiday

import (
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
)

func testSnapshot() []Holiday {
	return []Holiday{
		{ID: "h1", Name: "Independence Day", Date: dateutil.MustParseDate("2025-08-15")},
		{ID: "h2", Name: "Gandhi Jayanti", Date: dateutil.MustParseDate("2025-10-02")},
		// 2025-09-07 is a Sunday; explicit entry must win over the derived name.
		{ID: "h3", Name: "Founders Day", Date: dateutil.MustParseDate("2025-09-07")},
	}
}

func TestRegistry_IsHoliday_Explicit(t *testing.T) {
	r := NewRegistry(testSnapshot())

	assert.True(t, r.IsHoliday(dateutil.MustParseDate("2025-08-15")))
	assert.True(t, r.IsHoliday(dateutil.MustParseDate("2025-10-02")))
	assert.False(t, r.IsHoliday(dateutil.MustParseDate("2025-08-14")))
}

func TestRegistry_IsHoliday_Sunday(t *testing.T) {
	r := NewRegistry(nil)

	// Every Sunday is a holiday even with an empty snapshot.
	assert.True(t, r.IsHoliday(dateutil.MustParseDate("2025-09-07")))
	assert.True(t, r.IsHoliday(dateutil.MustParseDate("2025-09-14")))
	assert.False(t, r.IsHoliday(dateutil.MustParseDate("2025-09-08")))
}

func TestRegistry_Name_ExplicitWinsOverSunday(t *testing.T) {
	r := NewRegistry(testSnapshot())

	assert.Equal(t, "Founders Day", r.Name(dateutil.MustParseDate("2025-09-07")))
	assert.Equal(t, WeeklyHolidayName, r.Name(dateutil.MustParseDate("2025-09-14")))
	assert.Equal(t, "Independence Day", r.Name(dateutil.MustParseDate("2025-08-15")))
	assert.Equal(t, "", r.Name(dateutil.MustParseDate("2025-08-14")))
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry(testSnapshot())

	h, ok := r.Get(dateutil.MustParseDate("2025-08-15"))
	assert.True(t, ok)
	assert.Equal(t, "Independence Day", h.Name)

	_, ok = r.Get(dateutil.MustParseDate("2025-09-14"))
	assert.False(t, ok, "derived Sundays are not stored entries")
}
