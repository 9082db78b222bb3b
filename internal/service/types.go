// Package service provides the business logic layer for lifetuner.
// It wraps the storage, stats, coach and config packages behind one API
// shared by the CLI and TUI frontends.
package service

import (
	"time"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/goal"
	"github.com/xolan/lifetuner/internal/stats"
)

// EntryInput carries the fields to log for a date.
// Nil or empty fields keep the stored value unless Replace is set.
type EntryInput struct {
	// Date is YYYY-MM-DD or DD/MM/YYYY; empty means today
	Date       string
	BedTime    string
	WakeTime   string
	Mood       *int
	Energy     *int
	Activities string
	Note       string
	// Replace discards the stored entry instead of merging into it
	Replace bool
}

// GoalUpdate carries the goal fields to change; nil keeps the current value
type GoalUpdate struct {
	SleepHours        *float64
	MinEnergy         *int
	ExerciseFrequency *int
	MoodTarget        *int
}

// ListResult contains the entries in a date range
type ListResult struct {
	Entries []entry.Entry
	Start   time.Time
	End     time.Time
}

// PatternsResult contains the pattern analysis of the habit log
type PatternsResult struct {
	Date              string
	WindowDays        int
	Streak            stats.Streak
	Mood              stats.Average
	Energy            stats.Average
	Sleep             stats.SleepAverage
	MostCommonMood    int
	BestMood          int
	MostEnergeticHour int
	HasEnergeticHour  bool
	SleepQuality      stats.Rating
	Focus             stats.Rating
	Activities        []stats.ActivityCount
	DaysSinceLast     int
	HasEntries        bool
}

// ProgressResult contains goal progress for the configured window
type ProgressResult struct {
	Goals      goal.Goals
	WindowDays int
	Raw        stats.Progress
	Capped     stats.Progress
	Alerts     []stats.GoalAlert
}
