package filter

import (
	"testing"

	"github.com/xolan/lifetuner/internal/entry"
)

func intPtr(v int) *int { return &v }

func makeEntry(date, note string, mood *int, activities ...string) entry.Entry {
	return entry.Entry{
		Date:       date,
		Note:       note,
		Mood:       mood,
		Activities: activities,
	}
}

func dates(entries []entry.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Date
	}
	return out
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter_IsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"zero value", Filter{}, true},
		{"keyword", Filter{Keyword: "tired"}, false},
		{"activities", Filter{Activities: []string{"exercise"}}, false},
		{"min mood", Filter{MinMood: 3}, false},
		{"incomplete", Filter{Incomplete: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterEntries(t *testing.T) {
	entries := []entry.Entry{
		makeEntry("2024-01-08", "Felt tired after work", intPtr(2), "work"),
		makeEntry("2024-01-09", "Long run in the park", intPtr(5), "exercise", "social"),
		makeEntry("2024-01-10", "", nil, "Exercise"),
	}

	tests := []struct {
		name   string
		filter *Filter
		want   []string
	}{
		{"nil filter", nil, []string{"2024-01-08", "2024-01-09", "2024-01-10"}},
		{"empty filter", NewFilter("", nil), []string{"2024-01-08", "2024-01-09", "2024-01-10"}},
		{"keyword is case-insensitive", NewFilter("TIRED", nil), []string{"2024-01-08"}},
		{"activity is case-insensitive", NewFilter("", []string{"exercise"}), []string{"2024-01-09", "2024-01-10"}},
		{"activities use AND", NewFilter("", []string{"exercise", "social"}), []string{"2024-01-09"}},
		{"keyword and activity", NewFilter("run", []string{"exercise"}), []string{"2024-01-09"}},
		{"min mood skips missing mood", &Filter{MinMood: 2}, []string{"2024-01-08", "2024-01-09"}},
		{"min mood", &Filter{MinMood: 4}, []string{"2024-01-09"}},
		{"no match", NewFilter("holiday", nil), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dates(FilterEntries(entries, tt.filter))
			if !equalStringSlices(got, tt.want) {
				t.Errorf("FilterEntries() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Incomplete(t *testing.T) {
	bed := entry.ClockTime{Hour: 23}
	wake := entry.ClockTime{Hour: 7}
	complete := entry.Entry{Date: "2024-01-09", Mood: intPtr(4), Energy: intPtr(7), BedTime: &bed, WakeTime: &wake}
	partial := entry.Entry{Date: "2024-01-10", Mood: intPtr(4)}

	got := dates(FilterEntries([]entry.Entry{complete, partial}, &Filter{Incomplete: true}))
	if !equalStringSlices(got, []string{"2024-01-10"}) {
		t.Errorf("expected only the partial entry, got %v", got)
	}
}
