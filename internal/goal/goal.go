package goal

import (
	"errors"
	"fmt"
	"time"
)

// Default targets used when no goals have been saved
const (
	DefaultSleepHours        = 8.0
	DefaultMinEnergy         = 7
	DefaultExerciseFrequency = 3
	DefaultMoodTarget        = 4
)

// Accepted ranges when goals are set
const (
	MinSleepHours        = 6.0
	MaxSleepHours        = 12.0
	MinEnergyTarget      = 1
	MaxEnergyTarget      = 10
	MinExerciseFrequency = 1
	MaxExerciseFrequency = 7
	MinMoodTarget        = 1
	MaxMoodTarget        = 5
)

// Goals is the user's target set. It is always saved and loaded as a whole record.
type Goals struct {
	SleepHours        float64    `json:"sleep_hours" toml:"sleep_hours"`
	MinEnergy         int        `json:"min_energy" toml:"min_energy"`
	ExerciseFrequency int        `json:"exercise_frequency" toml:"exercise_frequency"`
	MoodTarget        int        `json:"mood_target" toml:"mood_target"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty" toml:"-"`
}

// Defaults returns the default goal set
func Defaults() Goals {
	return Goals{
		SleepHours:        DefaultSleepHours,
		MinEnergy:         DefaultMinEnergy,
		ExerciseFrequency: DefaultExerciseFrequency,
		MoodTarget:        DefaultMoodTarget,
	}
}

// WithDefaults fills zero-valued targets from Defaults.
// Goals written by older versions may lack fields; targets are never zero in use.
func (g Goals) WithDefaults() Goals {
	d := Defaults()
	if g.SleepHours <= 0 {
		g.SleepHours = d.SleepHours
	}
	if g.MinEnergy <= 0 {
		g.MinEnergy = d.MinEnergy
	}
	if g.ExerciseFrequency <= 0 {
		g.ExerciseFrequency = d.ExerciseFrequency
	}
	if g.MoodTarget <= 0 {
		g.MoodTarget = d.MoodTarget
	}
	return g
}

// Validate checks that every target lies within its accepted range
func (g Goals) Validate() error {
	var errs []error

	if g.SleepHours < MinSleepHours || g.SleepHours > MaxSleepHours {
		errs = append(errs, fmt.Errorf("sleep goal must be between %.0f and %.0f hours, got %g",
			MinSleepHours, MaxSleepHours, g.SleepHours))
	}
	if g.MinEnergy < MinEnergyTarget || g.MinEnergy > MaxEnergyTarget {
		errs = append(errs, fmt.Errorf("energy goal must be between %d and %d, got %d",
			MinEnergyTarget, MaxEnergyTarget, g.MinEnergy))
	}
	if g.ExerciseFrequency < MinExerciseFrequency || g.ExerciseFrequency > MaxExerciseFrequency {
		errs = append(errs, fmt.Errorf("exercise goal must be between %d and %d sessions per week, got %d",
			MinExerciseFrequency, MaxExerciseFrequency, g.ExerciseFrequency))
	}
	if g.MoodTarget < MinMoodTarget || g.MoodTarget > MaxMoodTarget {
		errs = append(errs, fmt.Errorf("mood goal must be between %d and %d, got %d",
			MinMoodTarget, MaxMoodTarget, g.MoodTarget))
	}

	return errors.Join(errs...)
}
