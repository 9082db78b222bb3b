package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	ViewTitle lipgloss.Style
	Section   lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Lists
	ItemSelected lipgloss.Style
	ItemNormal   lipgloss.Style
	EntryDate    lipgloss.Style
	EntryDetail  lipgloss.Style
	EntryTag     lipgloss.Style

	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Muted     lipgloss.Style

	// Insight severities
	InsightWarn     lipgloss.Style
	InsightInfo     lipgloss.Style
	InsightPositive lipgloss.Style

	Dialog lipgloss.Style

	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// palette maps semantic roles to colors
type palette struct {
	primary, secondary, accent, muted lipgloss.TerminalColor
	success, warning, danger          lipgloss.TerminalColor
	fg, bg, highlight                 lipgloss.TerminalColor
}

// DefaultStyles returns styles built from the 256 color palette
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:   lipgloss.Color("99"),
		secondary: lipgloss.Color("39"),
		accent:    lipgloss.Color("212"),
		muted:     lipgloss.Color("240"),
		success:   lipgloss.Color("82"),
		warning:   lipgloss.Color("214"),
		danger:    lipgloss.Color("196"),
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
		highlight: lipgloss.Color("237"),
	})
}

// NewStylesFromRegistry creates styles using the current tint of r.
// Purple is primary, cyan secondary, bright black muted.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:   r.Purple(),
		secondary: r.Cyan(),
		accent:    r.BrightPurple(),
		muted:     r.BrightBlack(),
		success:   r.Green(),
		warning:   r.Yellow(),
		danger:    r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
		highlight: r.BrightBlack(),
	})
}

func newStyles(p palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		ItemSelected: lipgloss.NewStyle().
			Background(p.highlight).
			Bold(true),
		ItemNormal: lipgloss.NewStyle(),
		EntryDate: lipgloss.NewStyle().
			Foreground(p.secondary).
			Width(12),
		EntryDetail: lipgloss.NewStyle().
			Foreground(p.fg),
		EntryTag: lipgloss.NewStyle().
			Foreground(p.accent),

		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(18),
		StatValue: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(p.muted),

		InsightWarn: lipgloss.NewStyle().
			Foreground(p.warning).
			Bold(true),
		InsightInfo: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		InsightPositive: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2).
			Width(56),

		Error: lipgloss.NewStyle().
			Foreground(p.danger),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.success),
	}
}
