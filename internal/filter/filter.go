package filter

import (
	"strings"

	"github.com/xolan/lifetuner/internal/entry"
)

// Filter narrows a list of habit entries.
// All fields are optional; empty values match every entry.
type Filter struct {
	Keyword    string   // case-insensitive substring of the note
	Activities []string // all must be present (AND, case-insensitive)
	MinMood    int      // entries without a mood never match when set
	Incomplete bool     // only entries missing mood, energy or sleep times
}

// NewFilter creates a Filter for a note keyword and activity tags
func NewFilter(keyword string, activities []string) *Filter {
	return &Filter{
		Keyword:    keyword,
		Activities: activities,
	}
}

// IsEmpty returns true if the filter matches all entries
func (f *Filter) IsEmpty() bool {
	return f.Keyword == "" && len(f.Activities) == 0 && f.MinMood == 0 && !f.Incomplete
}

// FilterEntries returns a new slice containing only matching entries.
// If the filter is empty, returns entries unchanged.
func FilterEntries(entries []entry.Entry, f *Filter) []entry.Entry {
	if f == nil || f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.Entry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// MatchesKeyword returns true if the keyword is found in the entry's note
func (f *Filter) MatchesKeyword(e entry.Entry) bool {
	if f.Keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Note), strings.ToLower(f.Keyword))
}

// MatchesActivities returns true if the entry has ALL filter activities
func (f *Filter) MatchesActivities(e entry.Entry) bool {
	for _, want := range f.Activities {
		found := false
		for _, got := range e.Activities {
			if strings.EqualFold(got, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// MatchesMood returns true if the entry's mood is at least MinMood
func (f *Filter) MatchesMood(e entry.Entry) bool {
	if f.MinMood == 0 {
		return true
	}
	return e.Mood != nil && *e.Mood >= f.MinMood
}

// Matches returns true if the entry satisfies every criterion
func (f *Filter) Matches(e entry.Entry) bool {
	if f.Incomplete && e.Completed() {
		return false
	}
	return f.MatchesKeyword(e) && f.MatchesActivities(e) && f.MatchesMood(e)
}
