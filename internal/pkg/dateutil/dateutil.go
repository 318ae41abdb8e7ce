package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange is returned when a date range has from after to.
var ErrInvalidRange = errors.New("invalid date range: from is after to")

const isoLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component. The zero
// value is not a valid date; construct via NewDate or ParseDate.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a strict ISO "YYYY-MM-DD" date string. No coercion
// of other layouts is attempted.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// MustParseDate is for literals in tests and fixtures.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string { return d.t.Format(isoLayout) }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Before(u Date) bool { return d.t.Before(u.t) }

func (d Date) After(u Date) bool { return d.t.After(u.t) }

func (d Date) Equal(u Date) bool { return d.t.Equal(u.t) }

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Time exposes the underlying midnight-UTC instant for repositories.
func (d Date) Time() time.Time { return d.t }

// DaysUntil returns the number of whole days from d to u.
func (d Date) DaysUntil(u Date) int {
	return int(u.t.Sub(d.t).Hours() / 24)
}

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date JSON: %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Today returns the current date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// FromTime truncates a timestamp to its calendar date (UTC).
func FromTime(t time.Time) Date {
	u := t.UTC()
	return NewDate(u.Year(), u.Month(), u.Day())
}

// ExpandRangeInclusive returns every date from from to to inclusive, in
// ascending order. Returns ErrInvalidRange when from is after to.
func ExpandRangeInclusive(from, to Date) ([]Date, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, from, to)
	}
	dates := make([]Date, 0, from.DaysUntil(to)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates, nil
}

// MonthKey returns the "YYYY-MM" key for a date.
func MonthKey(d Date) string { return d.t.Format("2006-01") }

// ParseMonthKey parses a "YYYY-MM" key and returns the first and last
// dates of that month.
func ParseMonthKey(key string) (first, last Date, err error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return Date{}, Date{}, fmt.Errorf("invalid month %q: %w", key, err)
	}
	first = NewDate(t.Year(), t.Month(), 1)
	last = Date{t: first.t.AddDate(0, 1, -1)}
	return first, last, nil
}

// DayOfWeek returns 0..6 with 0 = Sunday.
func DayOfWeek(d Date) int { return int(d.t.Weekday()) }
