package stats

import (
	"fmt"
	"time"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/timeutil"
)

// DefaultWindowDays is the trailing window used when none is configured
const DefaultWindowDays = 7

// NotAvailable is rendered for aggregates without eligible data
const NotAvailable = "N/A"

// Field selects a numeric entry field for averaging
type Field int

const (
	FieldMood Field = iota
	FieldEnergy
)

// String returns the field name
func (f Field) String() string {
	if f == FieldEnergy {
		return "energy"
	}
	return "mood"
}

// value extracts the field from an entry
func (f Field) value(e entry.Entry) (int, bool) {
	p := e.Mood
	if f == FieldEnergy {
		p = e.Energy
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Average is an arithmetic mean with the number of samples it covers.
// A zero Count means there was nothing to average.
type Average struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Valid reports whether the average has at least one sample
func (a Average) Valid() bool {
	return a.Count > 0
}

// String renders the average with one decimal, or N/A
func (a Average) String() string {
	if !a.Valid() {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f", a.Value)
}

// SleepAverage is the mean sleep duration in hours over nights with both times logged
type SleepAverage struct {
	Hours float64 `json:"hours"`
	Count int     `json:"count"`
}

// Valid reports whether at least one night was averaged
func (s SleepAverage) Valid() bool {
	return s.Count > 0
}

// String renders the average as "Xh Ym", or N/A
func (s SleepAverage) String() string {
	if !s.Valid() {
		return NotAvailable
	}
	return entry.FormatHours(s.Hours)
}

// WindowEntries returns the entries dated within [today-windowDays+1, today], ascending by date
func WindowEntries(log entry.Log, today time.Time, windowDays int) []entry.Entry {
	var out []entry.Entry
	for _, key := range log.Dates() {
		if timeutil.InWindow(key, today, windowDays) {
			out = append(out, log[key])
		}
	}
	return out
}

// WindowedAverage averages field over the window, skipping entries where it is missing
func WindowedAverage(log entry.Log, today time.Time, windowDays int, field Field) Average {
	return averageOf(WindowEntries(log, today, windowDays), field)
}

func averageOf(entries []entry.Entry, field Field) Average {
	var sum, n int
	for _, e := range entries {
		if v, ok := field.value(e); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return Average{}
	}
	return Average{Value: float64(sum) / float64(n), Count: n}
}

// AverageSleep averages sleep duration over windowed entries that have both times
func AverageSleep(log entry.Log, today time.Time, windowDays int, rule entry.RolloverRule) SleepAverage {
	return sleepAverageOf(WindowEntries(log, today, windowDays), rule)
}

func sleepAverageOf(entries []entry.Entry, rule entry.RolloverRule) SleepAverage {
	var total time.Duration
	var n int
	for _, e := range entries {
		if d, ok := e.Sleep(rule); ok {
			total += d
			n++
		}
	}
	if n == 0 {
		return SleepAverage{}
	}
	return SleepAverage{Hours: total.Hours() / float64(n), Count: n}
}

// MostCommonMood returns the most frequent mood in the window.
// Ties go to the largest mood value.
func MostCommonMood(log entry.Log, today time.Time, windowDays int) (int, bool) {
	counts := make(map[int]int)
	for _, e := range WindowEntries(log, today, windowDays) {
		if e.Mood != nil {
			counts[*e.Mood]++
		}
	}

	best, bestCount := 0, 0
	for mood, c := range counts {
		if c > bestCount || (c == bestCount && mood > best) {
			best, bestCount = mood, c
		}
	}
	return best, bestCount > 0
}

// BestMood returns the highest mood logged in the window
func BestMood(log entry.Log, today time.Time, windowDays int) (int, bool) {
	best, found := 0, false
	for _, e := range WindowEntries(log, today, windowDays) {
		if e.Mood != nil && (!found || *e.Mood > best) {
			best, found = *e.Mood, true
		}
	}
	return best, found
}

// exerciseDays counts entries tagged with the exercise activity
func exerciseDays(entries []entry.Entry) int {
	var n int
	for _, e := range entries {
		if e.HasActivity(entry.ActivityExercise) {
			n++
		}
	}
	return n
}

// shareOf returns the percentage of entries with field set whose value satisfies pred
func shareOf(entries []entry.Entry, field Field, pred func(int) bool) (float64, int) {
	var hits, n int
	for _, e := range entries {
		v, ok := field.value(e)
		if !ok {
			continue
		}
		n++
		if pred(v) {
			hits++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return float64(hits) / float64(n) * 100, n
}
