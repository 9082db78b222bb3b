package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/goal"
)

// EnergyMode selects how energy goal progress is measured
type EnergyMode int

const (
	// EnergyThreshold is the share of windowed days with energy at or above the goal
	EnergyThreshold EnergyMode = iota
	// EnergyAverage is the windowed average energy relative to the goal
	EnergyAverage
)

// ParseEnergyMode maps a config value ("threshold" or "average") to a mode
func ParseEnergyMode(s string) (EnergyMode, error) {
	switch s {
	case "", "threshold":
		return EnergyThreshold, nil
	case "average":
		return EnergyAverage, nil
	default:
		return EnergyThreshold, fmt.Errorf("invalid energy progress mode %q: must be 'threshold' or 'average'", s)
	}
}

// String returns the config name of the mode
func (m EnergyMode) String() string {
	if m == EnergyAverage {
		return "average"
	}
	return "threshold"
}

// Options tunes windowed computations
type Options struct {
	WindowDays int
	EnergyMode EnergyMode
	Rollover   entry.RolloverRule
}

// DefaultOptions returns a seven day window with threshold energy and strict rollover
func DefaultOptions() Options {
	return Options{WindowDays: DefaultWindowDays}
}

func (o Options) window() int {
	if o.WindowDays < 1 {
		return DefaultWindowDays
	}
	return o.WindowDays
}

// Progress holds raw goal completion percentages; values may exceed 100
type Progress struct {
	Sleep    float64 `json:"sleep"`
	Energy   float64 `json:"energy"`
	Exercise float64 `json:"exercise"`
	Mood     float64 `json:"mood"`
}

// Capped clamps every percentage to 100
func (p Progress) Capped() Progress {
	return Progress{
		Sleep:    math.Min(p.Sleep, 100),
		Energy:   math.Min(p.Energy, 100),
		Exercise: math.Min(p.Exercise, 100),
		Mood:     math.Min(p.Mood, 100),
	}
}

// GoalProgress measures the window against goals.
// Metrics without eligible days yield 0.
func GoalProgress(log entry.Log, today time.Time, goals goal.Goals, opts Options) Progress {
	goals = goals.WithDefaults()
	window := opts.window()
	entries := WindowEntries(log, today, window)

	var p Progress

	if sleep := sleepAverageOf(entries, opts.Rollover); sleep.Valid() {
		p.Sleep = sleep.Hours / goals.SleepHours * 100
	}

	switch opts.EnergyMode {
	case EnergyAverage:
		if avg := averageOf(entries, FieldEnergy); avg.Valid() {
			p.Energy = avg.Value / float64(goals.MinEnergy) * 100
		}
	default:
		p.Energy, _ = shareOf(entries, FieldEnergy, func(v int) bool { return v >= goals.MinEnergy })
	}

	if len(entries) > 0 {
		target := float64(goals.ExerciseFrequency) * float64(window) / 7
		p.Exercise = float64(exerciseDays(entries)) / target * 100
	}

	p.Mood, _ = shareOf(entries, FieldMood, func(v int) bool { return v >= goals.MoodTarget })

	return p
}

// AlertLevel classifies how close a goal is to completion
type AlertLevel string

const (
	AlertAchieved AlertLevel = "achieved"
	AlertClose    AlertLevel = "close"
)

// Goal names used in alerts
const (
	GoalSleep    = "sleep"
	GoalEnergy   = "energy"
	GoalExercise = "exercise"
	GoalMood     = "mood"
)

// GoalAlert flags a goal that is achieved (>= 100%) or close (>= 80%)
type GoalAlert struct {
	Goal    string     `json:"goal"`
	Level   AlertLevel `json:"level"`
	Percent float64    `json:"percent"`
}

// Message returns a human readable alert
func (a GoalAlert) Message() string {
	if a.Level == AlertAchieved {
		return fmt.Sprintf("%s goal achieved (%.0f%%)", a.Goal, a.Percent)
	}
	return fmt.Sprintf("%s goal almost there (%.0f%%)", a.Goal, a.Percent)
}

// GoalAlerts lists achieved and nearly achieved goals in sleep, energy, exercise, mood order
func GoalAlerts(p Progress) []GoalAlert {
	var alerts []GoalAlert
	for _, g := range []struct {
		name string
		pct  float64
	}{
		{GoalSleep, p.Sleep},
		{GoalEnergy, p.Energy},
		{GoalExercise, p.Exercise},
		{GoalMood, p.Mood},
	} {
		switch {
		case g.pct >= 100:
			alerts = append(alerts, GoalAlert{Goal: g.name, Level: AlertAchieved, Percent: g.pct})
		case g.pct >= 80:
			alerts = append(alerts, GoalAlert{Goal: g.name, Level: AlertClose, Percent: g.pct})
		}
	}
	return alerts
}
