package entry

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"
)

// activityPattern matches a single activity tag (e.g., "exercise", "deep-work", "walk_2")
var activityPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// activitySeparator splits user input on commas and whitespace
var activitySeparator = regexp.MustCompile(`[,\s]+`)

// Well-known activity tags offered by the interactive form
const (
	ActivityExercise   = "exercise"
	ActivityCoffee     = "coffee"
	ActivitySocial     = "social"
	ActivityWork       = "work"
	ActivityReading    = "reading"
	ActivityMeditation = "meditation"
	ActivityWalk       = "walk"
	ActivityScreen     = "screen"
)

// KnownActivities lists the well-known activity tags in display order
var KnownActivities = []string{
	ActivityExercise, ActivityCoffee, ActivitySocial, ActivityWork,
	ActivityReading, ActivityMeditation, ActivityWalk, ActivityScreen,
}

// ParseActivities splits a comma or space separated list into normalized activity tags.
// Example: "Exercise, reading walk" -> ["exercise", "reading", "walk"]
func ParseActivities(input string) ([]string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	var tags []string
	for _, part := range activitySeparator.Split(input, -1) {
		if part == "" {
			continue
		}
		tag := strings.ToLower(part)
		if !activityPattern.MatchString(tag) {
			return nil, fmt.Errorf("invalid activity %q: use letters, digits, '-' or '_'", part)
		}
		tags = append(tags, tag)
	}

	return NormalizeActivities(tags), nil
}

// NormalizeActivities lowercases, deduplicates and sorts activity tags.
// Empty tags are dropped.
func NormalizeActivities(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

// FormatHours renders fractional hours as "Xh Ym".
// Minutes are rounded; a value that rounds to 60 minutes carries into the hour.
func FormatHours(hours float64) string {
	total := int(math.Round(hours * 60))
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// FormatDuration renders a duration as "Xh Ym"
func FormatDuration(d time.Duration) string {
	return FormatHours(d.Hours())
}
