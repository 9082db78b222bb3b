package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/lifetuner/internal/config"
	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/service"
	"github.com/xolan/lifetuner/internal/stats"
	"github.com/xolan/lifetuner/internal/tui/ui"
)

// DashboardModel shows today's summary for a trailing window
type DashboardModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap
	bar      progress.Model

	width   int
	height  int
	window  int
	summary *stats.Summary
	loading bool
	err     error
}

// NewDashboardModel creates the dashboard view using the configured window
func NewDashboardModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) DashboardModel {
	return DashboardModel{
		services: services,
		styles:   styles,
		keys:     keys,
		bar:      newProgressBar(),
		window:   services.Config.Get().WindowDays,
		loading:  true,
	}
}

type summaryLoadedMsg struct {
	summary *stats.Summary
	err     error
}

// Init implements tea.Model
func (m DashboardModel) Init() tea.Cmd {
	return m.load()
}

// Window returns the number of days summarised
func (m DashboardModel) Window() int {
	return m.window
}

// Update implements tea.Model
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Shorter):
			if m.window > 1 {
				m.window--
				return m, m.load()
			}
		case key.Matches(msg, m.keys.Longer):
			if m.window < config.MaxWindowDays {
				m.window++
				return m, m.load()
			}
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load()
		}

	case summaryLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.summary = msg.summary

	case ui.DataChangedMsg:
		return m, m.load()

	case ui.ConfigChangedMsg:
		m.window = msg.Config.WindowDays
		return m, m.load()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m DashboardModel) View() string {
	var b strings.Builder

	if m.loading && m.summary == nil {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if m.summary == nil {
		b.WriteString("No data")
		return b.String()
	}

	s := m.summary
	rule := m.services.Config.Get().StatsOptions().Rollover

	b.WriteString(m.styles.ViewTitle.Render("Today - " + s.Date))
	b.WriteString("\n")
	b.WriteString(m.renderToday(s.Today, rule))
	b.WriteString(renderStatLine(m.styles, "Streak:", fmt.Sprintf("%d %s (longest %d)", s.Streak.Current, pluralize("day", s.Streak.Current), s.Streak.Longest)))

	b.WriteString("\n")
	b.WriteString(m.styles.Section.Render(fmt.Sprintf("Last %d %s", s.WindowDays, pluralize("day", s.WindowDays))))
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %d %s", s.EntriesInWindow, pluralize("entry", s.EntriesInWindow))))
	b.WriteString("\n")
	b.WriteString(renderStatLine(m.styles, "Mood:", s.Mood.String()))
	b.WriteString(renderStatLine(m.styles, "Energy:", s.Energy.String()))
	b.WriteString(renderStatLine(m.styles, "Sleep:", s.Sleep.String()))

	b.WriteString("\n")
	b.WriteString(m.styles.Section.Render("Goals"))
	b.WriteString("\n")
	capped := s.Progress.Capped()
	for _, row := range []struct {
		label  string
		target string
		pct    float64
	}{
		{"Sleep", fmt.Sprintf("%.1fh", s.Goals.SleepHours), capped.Sleep},
		{"Energy", fmt.Sprintf(">= %d", s.Goals.MinEnergy), capped.Energy},
		{"Exercise", fmt.Sprintf("%dx/week", s.Goals.ExerciseFrequency), capped.Exercise},
		{"Mood", fmt.Sprintf(">= %d", s.Goals.MoodTarget), capped.Mood},
	} {
		b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("%s %s", row.label, row.target)))
		b.WriteString(" ")
		b.WriteString(m.bar.ViewAs(row.pct / 100))
		b.WriteString(fmt.Sprintf(" %5.1f%%\n", row.pct))
	}
	for _, a := range s.Alerts {
		style := m.styles.Warning
		if a.Level == stats.AlertAchieved {
			style = m.styles.Success
		}
		b.WriteString(style.Render("  > " + a.Message()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m DashboardModel) renderToday(today *entry.Entry, rule entry.RolloverRule) string {
	switch {
	case today == nil:
		return renderStatLine(m.styles, "Today's entry:", "not logged yet")
	case today.Completed():
		return renderStatLine(m.styles, "Today's entry:", entryDetail(*today, rule))
	default:
		return renderStatLine(m.styles, "Today's entry:", entryDetail(*today, rule)+" (partial)")
	}
}

// SetSize sets the view dimensions
func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m DashboardModel) load() tea.Cmd {
	services, window := m.services, m.window
	return func() tea.Msg {
		s, err := services.Stats.Summary(context.Background(), window)
		return summaryLoadedMsg{summary: s, err: err}
	}
}
