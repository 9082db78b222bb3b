package stats

import (
	"fmt"
	"time"

	"github.com/xolan/lifetuner/internal/entry"
)

// Severity classifies an insight for presentation
type Severity string

const (
	SeverityWarn     Severity = "warn"
	SeverityInfo     Severity = "info"
	SeverityPositive Severity = "positive"
)

// Stable insight identifiers
const (
	InsightLowEnergy     = "low_energy"
	InsightGreatEnergy   = "great_energy"
	InsightShortSleep    = "insufficient_sleep"
	InsightOversleeping  = "oversleeping"
	InsightLowMood       = "attend_to_mood"
	InsightPositiveMood  = "positive_mood"
	InsightNeedActivity  = "need_more_activity"
	InsightGreatActivity = "great_activity"
	InsightKeepGoing     = "keep_going"
)

// Insight thresholds
const (
	lowEnergyBelow    = 5.0
	greatEnergyFrom   = 7.0
	shortSleepBelow   = 7.0
	longSleepAbove    = 9.0
	lowMoodValue      = 2
	lowMoodShareAbove = 30.0
	positiveMoodFrom  = 4.0
	fewExerciseBelow  = 2
	manyExerciseFrom  = 4
)

// Insight is a rule-triggered observation about recent data
type Insight struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Text     string   `json:"text"`
}

// GenerateInsights evaluates the insight rules over the window in fixed order.
// The keep-going insight is returned only when no other rule fired.
func GenerateInsights(log entry.Log, today time.Time, windowDays int, rule entry.RolloverRule) []Insight {
	entries := WindowEntries(log, today, windowDays)
	var out []Insight

	if energy := averageOf(entries, FieldEnergy); energy.Valid() {
		switch {
		case energy.Value < lowEnergyBelow:
			out = append(out, Insight{
				ID:       InsightLowEnergy,
				Severity: SeverityWarn,
				Title:    "Low energy",
				Text:     fmt.Sprintf("Your average energy is %.1f. Look at your sleep and eating habits.", energy.Value),
			})
		case energy.Value >= greatEnergyFrom:
			out = append(out, Insight{
				ID:       InsightGreatEnergy,
				Severity: SeverityPositive,
				Title:    "Great energy",
				Text:     fmt.Sprintf("Your average energy is %.1f. Keep up your current habits.", energy.Value),
			})
		}
	}

	if sleep := sleepAverageOf(entries, rule); sleep.Valid() {
		switch {
		case sleep.Hours < shortSleepBelow:
			out = append(out, Insight{
				ID:       InsightShortSleep,
				Severity: SeverityWarn,
				Title:    "Not enough sleep",
				Text:     fmt.Sprintf("You sleep %s on average. Aim for at least 7 hours.", sleep),
			})
		case sleep.Hours > longSleepAbove:
			out = append(out, Insight{
				ID:       InsightOversleeping,
				Severity: SeverityInfo,
				Title:    "Oversleeping",
				Text:     fmt.Sprintf("You sleep %s on average. More than 9 hours can leave you groggy.", sleep),
			})
		}
	}

	if share, n := shareOf(entries, FieldMood, func(v int) bool { return v <= lowMoodValue }); n > 0 && share > lowMoodShareAbove {
		out = append(out, Insight{
			ID:       InsightLowMood,
			Severity: SeverityWarn,
			Title:    "Attend to your mood",
			Text:     fmt.Sprintf("Your mood was low on %.0f%% of logged days. Consider talking to someone you trust.", share),
		})
	}

	if mood := averageOf(entries, FieldMood); mood.Valid() && mood.Value >= positiveMoodFrom {
		out = append(out, Insight{
			ID:       InsightPositiveMood,
			Severity: SeverityPositive,
			Title:    "Positive mood",
			Text:     fmt.Sprintf("Your average mood is %.1f. Whatever you are doing, it works.", mood.Value),
		})
	}

	if len(entries) > 0 {
		switch days := exerciseDays(entries); {
		case days < fewExerciseBelow:
			out = append(out, Insight{
				ID:       InsightNeedActivity,
				Severity: SeverityWarn,
				Title:    "More activity needed",
				Text:     fmt.Sprintf("You exercised on %d day(s). Even a short walk helps.", days),
			})
		case days >= manyExerciseFrom:
			out = append(out, Insight{
				ID:       InsightGreatActivity,
				Severity: SeverityPositive,
				Title:    "Great activity",
				Text:     fmt.Sprintf("You exercised on %d days. Excellent consistency.", days),
			})
		}
	}

	if len(out) == 0 {
		out = append(out, Insight{
			ID:       InsightKeepGoing,
			Severity: SeverityPositive,
			Title:    "Good job",
			Text:     "Your patterns look healthy. Keep going!",
		})
	}

	return out
}
