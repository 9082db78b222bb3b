package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is used when no theme is configured or the configured one is unknown
const DefaultTheme = "dracula"

// Themes is the catalogue of bundled bubbletint tints, addressed by ID
type Themes struct {
	registry *tint.Registry
	ids      []string
}

// LoadThemes builds the catalogue from every bundled tint
func LoadThemes() *Themes {
	all := tint.DefaultTints()
	ids := make([]string, 0, len(all))
	var fallback tint.Tint
	for _, t := range all {
		ids = append(ids, t.ID())
		if t.ID() == DefaultTheme {
			fallback = t
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}
	sort.Strings(ids)
	return &Themes{registry: tint.NewRegistry(fallback, all...), ids: ids}
}

// IDs returns all theme IDs, sorted
func (t *Themes) IDs() []string {
	return t.ids
}

// Resolve maps an empty or unknown id to DefaultTheme
func (t *Themes) Resolve(id string) string {
	if t.index(id) < 0 {
		return DefaultTheme
	}
	return id
}

// Step moves delta themes away from id, wrapping at both ends
func (t *Themes) Step(id string, delta int) string {
	if len(t.ids) == 0 {
		return id
	}
	i := t.index(t.Resolve(id))
	if i < 0 {
		i = 0
	}
	n := len(t.ids)
	return t.ids[((i+delta)%n+n)%n]
}

// Styles returns the styles for theme id, falling back to DefaultTheme
func (t *Themes) Styles(id string) Styles {
	if !t.registry.SetTintID(t.Resolve(id)) {
		return DefaultStyles()
	}
	return NewStylesFromRegistry(t.registry)
}

func (t *Themes) index(id string) int {
	i := sort.SearchStrings(t.ids, id)
	if i < len(t.ids) && t.ids[i] == id {
		return i
	}
	return -1
}
