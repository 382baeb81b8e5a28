package date

import (
	"fmt"
	"time"
)

// Date is a calendar point at day granularity. Time of day and time zone are
// deliberately not modeled; every Date maps to midnight UTC when a time.Time
// is needed for arithmetic.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns a normalized Date. Out-of-range components roll over the same
// way time.Date does, so New(2024, time.January, 32) is February 1st.
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime truncates t to its calendar day.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar day in local time.
func Today() Date {
	return FromTime(time.Now())
}

// Parse reads a date in ISO "2006-01-02" form.
func Parse(value string) (Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return FromTime(t), nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// Weekday returns the day of week for d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Same reports calendar-day equality.
func (d Date) Same(other Date) bool {
	return d == other
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// SameOrBefore reports whether d is on or earlier than other.
func (d Date) SameOrBefore(other Date) bool {
	return !d.After(other)
}

// SameOrAfter reports whether d is on or later than other.
func (d Date) SameOrAfter(other Date) bool {
	return !d.Before(other)
}

// AddDays returns d shifted by n calendar days. n may be negative.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// AddMonths returns d shifted by n months, normalized by the time package.
func (d Date) AddMonths(n int) Date {
	return FromTime(d.Time().AddDate(0, n, 0))
}

// AddYears returns d shifted by n years.
func (d Date) AddYears(n int) Date {
	return FromTime(d.Time().AddDate(n, 0, 0))
}

// DaysBetween returns the number of calendar days from a to b. The result is
// negative when b is before a.
func DaysBetween(a, b Date) int {
	return int(b.Time().Sub(a.Time()) / (24 * time.Hour))
}

// Clamp constrains d into [min, max]. Zero-valued bounds are ignored.
func (d Date) Clamp(min, max Date) Date {
	if !min.IsZero() && d.Before(min) {
		return min
	}
	if !max.IsZero() && d.After(max) {
		return max
	}
	return d
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// LastOfMonth returns the last day of d's month.
func (d Date) LastOfMonth() Date {
	return FromTime(time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC))
}

// WeekStart returns the most recent day on or before d that falls on
// firstDayOfWeek.
func (d Date) WeekStart(firstDayOfWeek time.Weekday) Date {
	offset := int(d.Weekday()) - int(firstDayOfWeek)
	if offset < 0 {
		offset += 7
	}
	return d.AddDays(-offset)
}

// Min returns the earlier of a and b.
func Min(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of a and b.
func Max(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}
