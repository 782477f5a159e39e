// Package dateutil provides calendar-date arithmetic pinned to UTC+9 (JST).
// All dates are represented as time.Time values at midnight UTC; the host
// timezone is never consulted, so behavior is identical regardless of where
// the server runs.
package dateutil

import "time"

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// offset is the fixed JST offset from UTC.
const offset = 9 * time.Hour

// FromTime returns the JST calendar date of the given instant.
// The instant is shifted by the fixed offset and the date fields are read
// from the shifted value.
func FromTime(t time.Time) time.Time {
	shifted := t.UTC().Add(offset)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in JST.
func Today() time.Time {
	return FromTime(time.Now())
}

// Format renders a calendar date as YYYY-MM-DD.
func Format(d time.Time) string {
	return d.Format(Layout)
}

// Parse parses a YYYY-MM-DD string into a calendar date.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.UTC)
}

// DaysInMonth returns the number of days in the given month.
// Day zero of the following month is the last day of this one, which
// handles 28-31 day months and leap years.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthWindow returns the inclusive [first day, last day] range of the month.
func MonthWindow(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.Month(month), DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return first, last
}

// WeekStart returns the most recent Monday on or before today.
// Sunday goes back six days; any other day goes back (weekday - 1) days,
// anchoring weeks to a Monday start regardless of locale.
func WeekStart(today time.Time) time.Time {
	weekday := int(today.Weekday())
	if weekday == 0 {
		return today.AddDate(0, 0, -6)
	}
	return today.AddDate(0, 0, -(weekday - 1))
}
