package dateutil

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"2025-09-01", true},
		{"2025-12-31", true},
		{"2025-9-1", false},
		{"01-09-2025", false},
		{"2025-09-01T00:00:00Z", false},
		{"", false},
		{"not-a-date", false},
	}
	for _, c := range cases {
		_, err := ParseDate(c.input)
		if (err == nil) != c.ok {
			t.Errorf("ParseDate(%q) error = %v, want ok = %v", c.input, err, c.ok)
		}
	}
}

func TestExpandRangeInclusive(t *testing.T) {
	from := MustParseDate("2025-09-01")
	to := MustParseDate("2025-09-05")

	dates, err := ExpandRangeInclusive(from, to)
	if err != nil {
		t.Fatalf("ExpandRangeInclusive returned error: %v", err)
	}
	if len(dates) != 5 {
		t.Fatalf("expected 5 dates, got %d", len(dates))
	}
	if !dates[0].Equal(from) || !dates[4].Equal(to) {
		t.Errorf("expected first %s and last %s, got %s and %s", from, to, dates[0], dates[4])
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i-1].Before(dates[i]) {
			t.Errorf("dates not strictly ascending at index %d: %s >= %s", i, dates[i-1], dates[i])
		}
	}
}

func TestExpandRangeInclusive_SingleDay(t *testing.T) {
	d := MustParseDate("2025-09-15")
	dates, err := ExpandRangeInclusive(d, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 1 || !dates[0].Equal(d) {
		t.Errorf("expected single-element range, got %v", dates)
	}
}

func TestExpandRangeInclusive_InvalidRange(t *testing.T) {
	_, err := ExpandRangeInclusive(MustParseDate("2025-09-05"), MustParseDate("2025-09-01"))
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestExpandRangeInclusive_AcrossMonthBoundary(t *testing.T) {
	dates, err := ExpandRangeInclusive(MustParseDate("2025-08-30"), MustParseDate("2025-09-02"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2025-08-30", "2025-08-31", "2025-09-01", "2025-09-02"}
	if len(dates) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(dates))
	}
	for i, w := range want {
		if dates[i].String() != w {
			t.Errorf("dates[%d] = %s, want %s", i, dates[i], w)
		}
	}
}

func TestMonthKey(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-09-15", "2025-09"},
		{"2025-01-01", "2025-01"},
		{"2024-12-31", "2024-12"},
	}
	for _, c := range cases {
		got := MonthKey(MustParseDate(c.date))
		if got != c.want {
			t.Errorf("MonthKey(%s) = %s, want %s", c.date, got, c.want)
		}
	}
}

func TestParseMonthKey(t *testing.T) {
	first, last, err := ParseMonthKey("2025-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.String() != "2025-09-01" || last.String() != "2025-09-30" {
		t.Errorf("ParseMonthKey(2025-09) = %s..%s, want 2025-09-01..2025-09-30", first, last)
	}

	first, last, err = ParseMonthKey("2024-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last.String() != "2024-02-29" {
		t.Errorf("expected leap-year end 2024-02-29, got %s", last)
	}

	if _, _, err := ParseMonthKey("2025/09"); err == nil {
		t.Error("expected error for malformed month key")
	}
}

func TestDayOfWeek(t *testing.T) {
	// 2025-09-07 is a Sunday, 2025-09-01 a Monday.
	if got := DayOfWeek(MustParseDate("2025-09-07")); got != 0 {
		t.Errorf("DayOfWeek(2025-09-07) = %d, want 0", got)
	}
	if got := DayOfWeek(MustParseDate("2025-09-01")); got != 1 {
		t.Errorf("DayOfWeek(2025-09-01) = %d, want 1", got)
	}
	if got := DayOfWeek(MustParseDate("2025-09-06")); got != 6 {
		t.Errorf("DayOfWeek(2025-09-06) = %d, want 6", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := MustParseDate("2025-09-07")
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != `"2025-09-07"` {
		t.Errorf("MarshalJSON = %s, want \"2025-09-07\"", b)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip mismatch: %s != %s", back, d)
	}
}

func TestDaysUntil(t *testing.T) {
	a := MustParseDate("2025-09-01")
	b := MustParseDate("2025-09-30")
	if got := a.DaysUntil(b); got != 29 {
		t.Errorf("DaysUntil = %d, want 29", got)
	}
	if got := b.DaysUntil(a); got != -29 {
		t.Errorf("DaysUntil reversed = %d, want -29", got)
	}
}
