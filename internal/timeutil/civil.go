package timeutil

import "time"

// DateLayout is the ISO calendar date format used as habit log key
const DateLayout = "2006-01-02"

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return AddDays(t, 1).Add(-time.Nanosecond)
}

// AddDays moves t by n calendar days and truncates to midnight.
// Calendar arithmetic keeps DST transitions from shifting the date.
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, t.Location())
}

// DateKey formats the calendar date of t as YYYY-MM-DD
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the number of calendar days from a to b (negative when b is before a)
func DaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// WindowStart returns the first calendar day of the trailing window of
// windowDays days that ends on today (inclusive). A non-positive window
// is treated as a single day.
func WindowStart(today time.Time, windowDays int) time.Time {
	if windowDays < 1 {
		windowDays = 1
	}
	return AddDays(today, -(windowDays - 1))
}

// InWindow reports whether the YYYY-MM-DD key falls within the trailing
// window of windowDays days ending on today
func InWindow(key string, today time.Time, windowDays int) bool {
	return key >= DateKey(WindowStart(today, windowDays)) && key <= DateKey(today)
}

// Today returns now expressed in loc, or in now's own location when loc is nil
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return now
	}
	return now.In(loc)
}

// IsInRange checks if the given time t falls within the range [start, end] (inclusive)
func IsInRange(t, start, end time.Time) bool {
	return (t.Equal(start) || t.After(start)) && (t.Equal(end) || t.Before(end))
}
