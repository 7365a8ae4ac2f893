package ticktick

import "time"

// Date is a plain Gregorian calendar date with no time component and no timezone. Values built by NewDate
// are always real calendar dates; the zero value is not meaningful and only appears next to ok=false.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a date and reports whether the components form a real calendar date. Out-of-range
// components (day 0, day 31 in a 30-day month, month 13) are rejected rather than normalized away.
func NewDate(year int, month time.Month, day int) (Date, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	y, m, d := t.Date()
	if y != year || m != month || d != day {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// DateOf extracts the calendar date of t, in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d; n may be negative.
func (d Date) AddDays(n int) Date {
	return DateOf(d.utc().AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool { return d.utc().Before(other.utc()) }

func (d Date) After(other Date) bool { return d.utc().After(other.utc()) }

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday { return d.utc().Weekday() }

// weekdayFromMonday maps Monday to 0 through Sunday to 6. Weeks start on Monday here.
func (d Date) weekdayFromMonday() int {
	return (int(d.Weekday()) + 6) % 7
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.utc().Format("2006-01-02")
}
