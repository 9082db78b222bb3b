package timeutil

import (
	"fmt"
	"time"
)

// ParseDateRangeFlags resolves --from/--to/--last flags against now.
// If lastDays > 0 it selects the trailing window ending today; combining it
// with --from or --to is an error. A missing --to defaults to today and a
// missing --from leaves start zero (unbounded).
func ParseDateRangeFlags(fromStr, toStr string, lastDays int, now time.Time) (start, end time.Time, err error) {
	if lastDays < 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("--last must be positive, got %d", lastDays)
	}

	if lastDays > 0 && (fromStr != "" || toStr != "") {
		return time.Time{}, time.Time{}, fmt.Errorf("cannot use --last with --from or --to")
	}

	if lastDays > 0 {
		return WindowStart(now, lastDays), EndOfDay(now), nil
	}

	loc := now.Location()

	if fromStr != "" {
		start, err = ParseDate(fromStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
	}

	if toStr != "" {
		toDate, err := ParseDate(toStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
		end = EndOfDay(toDate)
	} else {
		end = EndOfDay(now)
	}

	if !start.IsZero() && start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from date (%s) is after --to date (%s)",
			DateKey(start), DateKey(end))
	}

	return start, end, nil
}
