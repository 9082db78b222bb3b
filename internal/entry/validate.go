package entry

import (
	"errors"
	"fmt"
	"time"
)

// Accepted ranges for logged values
const (
	MinMood   = 1
	MaxMood   = 5
	MinEnergy = 1
	MaxEnergy = 10

	MinSleep = 3 * time.Hour
	MaxSleep = 12 * time.Hour
)

// Validate checks an entry before it is written.
// All problems are reported together.
func Validate(e Entry, rule RolloverRule) error {
	var errs []error

	if _, ok := e.Day(); !ok {
		errs = append(errs, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", e.Date))
	}

	if e.Mood != nil && (*e.Mood < MinMood || *e.Mood > MaxMood) {
		errs = append(errs, fmt.Errorf("mood must be between %d and %d, got %d", MinMood, MaxMood, *e.Mood))
	}

	if e.Energy != nil && (*e.Energy < MinEnergy || *e.Energy > MaxEnergy) {
		errs = append(errs, fmt.Errorf("energy must be between %d and %d, got %d", MinEnergy, MaxEnergy, *e.Energy))
	}

	if d, ok := e.Sleep(rule); ok && (d < MinSleep || d > MaxSleep) {
		errs = append(errs, fmt.Errorf("sleep must be between %s and %s, got %s",
			FormatDuration(MinSleep), FormatDuration(MaxSleep), FormatDuration(d)))
	}

	for _, a := range e.Activities {
		if !activityPattern.MatchString(a) {
			errs = append(errs, fmt.Errorf("invalid activity %q", a))
		}
	}

	return errors.Join(errs...)
}
