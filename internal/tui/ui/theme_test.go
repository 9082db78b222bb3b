package ui

import (
	"sort"
	"testing"
)

func TestLoadThemes_IDs(t *testing.T) {
	ids := LoadThemes().IDs()
	if len(ids) < 2 {
		t.Fatalf("expected bundled themes, got %d", len(ids))
	}
	if !sort.StringsAreSorted(ids) {
		t.Error("expected sorted theme IDs")
	}
	found := false
	for _, id := range ids {
		if id == DefaultTheme {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q among bundled themes", DefaultTheme)
	}
}

func TestThemes_Resolve(t *testing.T) {
	themes := LoadThemes()
	other := themes.IDs()[0]

	tests := []struct {
		name string
		id   string
		want string
	}{
		{"empty uses default", "", DefaultTheme},
		{"known theme", other, other},
		{"unknown falls back", "nonexistent-theme-xyz", DefaultTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := themes.Resolve(tt.id); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestThemes_Step(t *testing.T) {
	themes := LoadThemes()
	ids := themes.IDs()
	first, last := ids[0], ids[len(ids)-1]

	tests := []struct {
		name  string
		id    string
		delta int
		want  string
	}{
		{"forward", first, 1, ids[1]},
		{"backward wraps", first, -1, last},
		{"forward wraps", last, 1, first},
		{"zero stays", last, 0, last},
		{"unknown starts at default", "nonexistent-theme-xyz", 0, DefaultTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := themes.Step(tt.id, tt.delta); got != tt.want {
				t.Errorf("Step(%q, %d) = %q, want %q", tt.id, tt.delta, got, tt.want)
			}
		})
	}
}

func TestThemes_StylesUnknownTheme(t *testing.T) {
	styles := LoadThemes().Styles("nonexistent-theme-xyz")
	if !styles.ViewTitle.GetBold() {
		t.Error("expected usable styles for an unknown theme")
	}
}
