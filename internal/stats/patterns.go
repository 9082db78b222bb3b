package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/timeutil"
)

// HourlyEnergy buckets entries that have both energy and a capture timestamp
// by hour of day and averages each bucket over the whole log
func HourlyEnergy(log entry.Log) [24]Average {
	var sums, counts [24]int
	for _, e := range log {
		if e.Energy == nil || e.Timestamp == nil {
			continue
		}
		h := e.Timestamp.Hour()
		sums[h] += *e.Energy
		counts[h]++
	}

	var out [24]Average
	for h := range out {
		if counts[h] > 0 {
			out[h] = Average{Value: float64(sums[h]) / float64(counts[h]), Count: counts[h]}
		}
	}
	return out
}

// MostEnergeticHour returns the hour of day with the highest average energy.
// Ties resolve to the lowest hour.
func MostEnergeticHour(log entry.Log) (int, bool) {
	hourly := HourlyEnergy(log)
	best, found := 0, false
	for h, avg := range hourly {
		if !avg.Valid() {
			continue
		}
		if !found || avg.Value > hourly[best].Value {
			best, found = h, true
		}
	}
	return best, found
}

// Rating levels
const (
	RatingExcellent    = "excellent"
	RatingGood         = "good"
	RatingAverage      = "average"
	RatingPoor         = "poor"
	RatingFrequentDips = "frequent dips"
	RatingModerateDips = "moderate dips"
	RatingGoodFocus    = "good focus"
)

// Rating is a qualitative label derived from a percentage of sampled days
type Rating struct {
	Level   string  `json:"level"`
	Percent float64 `json:"percent"`
	Count   int     `json:"count"`
}

// Valid reports whether the rating is backed by data
func (r Rating) Valid() bool {
	return r.Count > 0
}

// String renders the rating level and percentage, or N/A
func (r Rating) String() string {
	if !r.Valid() {
		return NotAvailable
	}
	return fmt.Sprintf("%s (%.0f%%)", r.Level, r.Percent)
}

// SleepQuality rates the share of windowed nights lasting 7 to 9 hours
func SleepQuality(log entry.Log, today time.Time, windowDays int, rule entry.RolloverRule) Rating {
	var good, n int
	for _, e := range WindowEntries(log, today, windowDays) {
		d, ok := e.Sleep(rule)
		if !ok {
			continue
		}
		n++
		if d >= 7*time.Hour && d <= 9*time.Hour {
			good++
		}
	}
	if n == 0 {
		return Rating{}
	}

	pct := float64(good) / float64(n) * 100
	r := Rating{Percent: pct, Count: n}
	switch {
	case pct >= 80:
		r.Level = RatingExcellent
	case pct >= 60:
		r.Level = RatingGood
	case pct >= 40:
		r.Level = RatingAverage
	default:
		r.Level = RatingPoor
	}
	return r
}

// FocusPattern rates how often windowed energy dips to 4 or below
func FocusPattern(log entry.Log, today time.Time, windowDays int) Rating {
	pct, n := shareOf(WindowEntries(log, today, windowDays), FieldEnergy, func(v int) bool { return v <= 4 })
	if n == 0 {
		return Rating{}
	}

	r := Rating{Percent: pct, Count: n}
	switch {
	case pct > 50:
		r.Level = RatingFrequentDips
	case pct > 25:
		r.Level = RatingModerateDips
	default:
		r.Level = RatingGoodFocus
	}
	return r
}

// ActivityCount is the number of windowed days tagged with an activity
type ActivityCount struct {
	Activity string `json:"activity"`
	Days     int    `json:"days"`
}

// ActivityBreakdown counts activities over the window, sorted by days desc then name
func ActivityBreakdown(log entry.Log, today time.Time, windowDays int) []ActivityCount {
	counts := make(map[string]int)
	for _, e := range WindowEntries(log, today, windowDays) {
		for _, a := range entry.NormalizeActivities(e.Activities) {
			counts[a]++
		}
	}

	out := make([]ActivityCount, 0, len(counts))
	for a, n := range counts {
		out = append(out, ActivityCount{Activity: a, Days: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Days != out[j].Days {
			return out[i].Days > out[j].Days
		}
		return out[i].Activity < out[j].Activity
	})
	return out
}

// DaysSinceLastEntry returns the number of days between the latest entry on or
// before today and today
func DaysSinceLastEntry(log entry.Log, today time.Time) (int, bool) {
	todayKey := timeutil.DateKey(today)
	var last string
	for key := range log {
		if key <= todayKey && key > last {
			last = key
		}
	}
	if last == "" {
		return 0, false
	}

	day, err := time.ParseInLocation(timeutil.DateLayout, last, today.Location())
	if err != nil {
		return 0, false
	}
	return timeutil.DaysBetween(day, today), true
}
