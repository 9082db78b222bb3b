package stats

import (
	"time"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/goal"
	"github.com/xolan/lifetuner/internal/timeutil"
)

// Summary bundles every aggregate a renderer needs for one day
type Summary struct {
	Date            string       `json:"date"`
	WindowDays      int          `json:"window_days"`
	Today           *entry.Entry `json:"today,omitempty"`
	EntriesInWindow int          `json:"entries_in_window"`
	Streak          Streak       `json:"streak"`
	Mood            Average      `json:"mood"`
	Energy          Average      `json:"energy"`
	Sleep           SleepAverage `json:"sleep"`
	MostCommonMood  int          `json:"most_common_mood,omitempty"`
	Goals           goal.Goals   `json:"goals"`
	Progress        Progress     `json:"progress"`
	Alerts          []GoalAlert  `json:"alerts,omitempty"`
	Insights        []Insight    `json:"insights"`
}

// Summarize computes the full result bundle for today
func Summarize(log entry.Log, goals goal.Goals, today time.Time, opts Options) Summary {
	window := opts.window()
	goals = goals.WithDefaults()
	progress := GoalProgress(log, today, goals, opts)

	s := Summary{
		Date:            timeutil.DateKey(today),
		WindowDays:      window,
		EntriesInWindow: len(WindowEntries(log, today, window)),
		Streak:          ComputeStreak(log, today),
		Mood:            WindowedAverage(log, today, window, FieldMood),
		Energy:          WindowedAverage(log, today, window, FieldEnergy),
		Sleep:           AverageSleep(log, today, window, opts.Rollover),
		Goals:           goals,
		Progress:        progress,
		Alerts:          GoalAlerts(progress.Capped()),
		Insights:        GenerateInsights(log, today, window, opts.Rollover),
	}

	if e, ok := log.Get(today); ok {
		s.Today = &e
	}
	if mood, ok := MostCommonMood(log, today, window); ok {
		s.MostCommonMood = mood
	}

	return s
}
