package entry

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// clockPattern matches a local time of day in H:MM or HH:MM format
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ClockTime is a local time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses a time of day in HH:MM format (e.g. "23:30", "7:05")
func ParseClock(input string) (ClockTime, error) {
	matches := clockPattern.FindStringSubmatch(input)
	if matches == nil {
		return ClockTime{}, fmt.Errorf("invalid time %q: expected HH:MM (e.g., 23:30)", input)
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid time %q: hour must be 0-23 and minute 0-59", input)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

// MustClock is ParseClock for literals; it panics on malformed input
func MustClock(input string) *ClockTime {
	c, err := ParseClock(input)
	if err != nil {
		panic(err)
	}
	return &c
}

// Minutes returns the number of minutes since midnight
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// String formats the time as HH:MM
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MarshalText implements encoding.TextMarshaler
func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *ClockTime) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// RolloverRule decides when a sleep period is assumed to cross midnight.
type RolloverRule int

const (
	// RolloverStrict adds a day only when wake is earlier than bed; equal times give 0h.
	RolloverStrict RolloverRule = iota
	// RolloverInclusive adds a day when wake is earlier than or equal to bed; equal times give 24h.
	RolloverInclusive
)

// ParseRolloverRule maps a config value ("strict" or "inclusive") to a rule
func ParseRolloverRule(s string) (RolloverRule, error) {
	switch s {
	case "", "strict":
		return RolloverStrict, nil
	case "inclusive":
		return RolloverInclusive, nil
	default:
		return RolloverStrict, fmt.Errorf("invalid sleep rollover %q: must be 'strict' or 'inclusive'", s)
	}
}

// String returns the config name of the rule
func (r RolloverRule) String() string {
	if r == RolloverInclusive {
		return "inclusive"
	}
	return "strict"
}

// SleepDuration computes the time between bed and wake.
// When the wake clock value is before the bed value (or equal, under RolloverInclusive)
// the period is assumed to cross midnight and 24h is added to wake.
func SleepDuration(bed, wake ClockTime, rule RolloverRule) time.Duration {
	b, w := bed.Minutes(), wake.Minutes()
	if w < b || (rule == RolloverInclusive && w == b) {
		w += 24 * 60
	}
	return time.Duration(w-b) * time.Minute
}
