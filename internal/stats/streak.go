package stats

import (
	"time"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/timeutil"
)

// Streak holds the current and longest runs of completed days
type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// ComputeStreak counts consecutive completed days.
// Current walks back from today (inclusive) and stops at the first day without a
// completed entry. Longest is the longest run of physically consecutive calendar
// dates with completed entries anywhere in the log.
func ComputeStreak(log entry.Log, today time.Time) Streak {
	var s Streak
	if len(log) == 0 {
		return s
	}

	for d := today; ; d = timeutil.AddDays(d, -1) {
		e, ok := log[timeutil.DateKey(d)]
		if !ok || !e.Completed() {
			break
		}
		s.Current++
	}

	var run int
	var prev time.Time
	for _, key := range log.Dates() {
		if !log[key].Completed() {
			run = 0
			continue
		}
		day, err := time.Parse(timeutil.DateLayout, key)
		if err != nil {
			run = 0
			continue
		}
		if run > 0 && timeutil.DaysBetween(prev, day) == 1 {
			run++
		} else {
			run = 1
		}
		prev = day
		if run > s.Longest {
			s.Longest = run
		}
	}

	return s
}
