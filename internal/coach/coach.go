// Package coach turns the habit log into feeling-based suggestions and daily motivation.
package coach

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/stats"
)

// RecentDays is the lookback used for personalisation
const RecentDays = 7

// MaxPrimary caps the primary recommendations returned
const MaxPrimary = 3

// Feeling is the self-reported state recommendations are built for
type Feeling string

const (
	FeelingTired     Feeling = "tired"
	FeelingStressed  Feeling = "stressed"
	FeelingEnergetic Feeling = "energetic"
	FeelingUnfocused Feeling = "unfocused"
)

// Feelings lists the supported feelings in display order
var Feelings = []Feeling{FeelingTired, FeelingStressed, FeelingEnergetic, FeelingUnfocused}

// ParseFeeling matches input case-insensitively against the supported feelings
func ParseFeeling(input string) (Feeling, error) {
	f := Feeling(strings.ToLower(strings.TrimSpace(input)))
	if _, ok := baseRecommendations[f]; ok {
		return f, nil
	}

	names := make([]string, len(Feelings))
	for i, f := range Feelings {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown feeling %q: must be one of %s", input, strings.Join(names, ", "))
}

// TimeOfDay buckets the local hour for contextual advice
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// TimeOfDayAt returns Morning before 12:00, Afternoon before 18:00 and Evening otherwise
func TimeOfDayAt(now time.Time) TimeOfDay {
	switch h := now.Hour(); {
	case h < 12:
		return Morning
	case h < 18:
		return Afternoon
	default:
		return Evening
	}
}

// Recommendation is one suggested action
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Recommendations bundles the suggestions for one request
type Recommendations struct {
	Feeling    Feeling          `json:"feeling"`
	Primary    []Recommendation `json:"primary"`
	TimeOfDay  TimeOfDay        `json:"time_of_day"`
	Contextual []string         `json:"contextual"`
}

// Recommend builds suggestions for feeling, personalised from the last week of log
// and completed with advice for the time of day of now
func Recommend(feeling Feeling, log entry.Log, today, now time.Time) Recommendations {
	base := baseRecommendations[feeling]
	recs := make([]Recommendation, 0, len(base)+2)
	recs = append(recs, base...)

	recent := stats.WindowEntries(log, today, RecentDays)
	if lowExercise(recent) {
		recs = append([]Recommendation{addActivity}, recs...)
	}
	if irregularSleep(recent) {
		recs = append([]Recommendation{regularSleep}, recs...)
	}
	if len(recs) > MaxPrimary {
		recs = recs[:MaxPrimary]
	}

	tod := TimeOfDayAt(now)
	return Recommendations{
		Feeling:    feeling,
		Primary:    recs,
		TimeOfDay:  tod,
		Contextual: contextualAdvice[tod],
	}
}

// lowExercise reports fewer than two exercise days
func lowExercise(entries []entry.Entry) bool {
	var n int
	for _, e := range entries {
		if e.HasActivity(entry.ActivityExercise) {
			n++
		}
	}
	return n < 2
}

// irregularSleep reports a bedtime spread of more than two hours.
// Bedtimes before noon are treated as after midnight of the same night.
func irregularSleep(entries []entry.Entry) bool {
	var hours []int
	for _, e := range entries {
		if e.BedTime == nil {
			continue
		}
		h := e.BedTime.Hour
		if h < 12 {
			h += 24
		}
		hours = append(hours, h)
	}
	if len(hours) < 2 {
		return false
	}

	lo, hi := hours[0], hours[0]
	for _, h := range hours[1:] {
		lo = min(lo, h)
		hi = max(hi, h)
	}
	return hi-lo > 2
}

// DailyMotivation returns the quote for today's day of the year
func DailyMotivation(today time.Time) string {
	return quotes[today.YearDay()%len(quotes)]
}

// DailyInsight returns a one-line reading of the last week
func DailyInsight(log entry.Log, today time.Time) string {
	recent := stats.WindowEntries(log, today, RecentDays)
	if len(recent) == 0 {
		return "Start logging your days to get personalised insights."
	}

	energy := stats.WindowedAverage(log, today, RecentDays, stats.FieldEnergy)
	var exercise int
	for _, e := range recent {
		if e.HasActivity(entry.ActivityExercise) {
			exercise++
		}
	}

	switch {
	case energy.Valid() && energy.Value > 7 && exercise >= 3:
		return "Excellent! Your energy is high and you exercise regularly. Keep it up!"
	case energy.Valid() && energy.Value < 5:
		return "Your energy has been low. Try more sleep and some physical activity."
	case exercise < 2:
		return "A bit more physical activity can noticeably lift your energy and mood."
	default:
		return "Tracking your habits consistently helps you understand yourself. Keep logging!"
	}
}
