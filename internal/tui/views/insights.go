package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/lifetuner/internal/coach"
	"github.com/xolan/lifetuner/internal/service"
	"github.com/xolan/lifetuner/internal/stats"
	"github.com/xolan/lifetuner/internal/tui/ui"
)

// InsightsModel shows rule insights, the daily reading and coach suggestions
type InsightsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width    int
	height   int
	insights []stats.Insight
	daily    string
	quote    string
	feeling  int
	recs     *coach.Recommendations
	loading  bool
	err      error
}

// NewInsightsModel creates the insights view
func NewInsightsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) InsightsModel {
	return InsightsModel{
		services: services,
		styles:   styles,
		keys:     keys,
		loading:  true,
	}
}

type insightsLoadedMsg struct {
	insights []stats.Insight
	daily    string
	quote    string
	recs     *coach.Recommendations
	err      error
}

// Init implements tea.Model
func (m InsightsModel) Init() tea.Cmd {
	return m.load()
}

// Feeling returns the feeling recommendations are shown for
func (m InsightsModel) Feeling() coach.Feeling {
	return coach.Feelings[m.feeling]
}

// Update implements tea.Model
func (m InsightsModel) Update(msg tea.Msg) (InsightsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Right):
			m.feeling = (m.feeling + 1) % len(coach.Feelings)
			return m, m.load()
		case key.Matches(msg, m.keys.Left):
			m.feeling = (m.feeling - 1 + len(coach.Feelings)) % len(coach.Feelings)
			return m, m.load()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load()
		}

	case insightsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.insights = msg.insights
			m.daily = msg.daily
			m.quote = msg.quote
			m.recs = msg.recs
		}

	case ui.DataChangedMsg:
		return m, m.load()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m InsightsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Insights"))
	b.WriteString("\n")

	if m.loading && m.recs == nil {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if m.daily != "" {
		b.WriteString(m.styles.StatValue.Render(m.daily))
		b.WriteString("\n\n")
	}
	renderInsights(&b, m.styles, m.insights)

	b.WriteString("\n")
	b.WriteString(m.styles.Section.Render("Feeling: "))
	for i, f := range coach.Feelings {
		if i == m.feeling {
			b.WriteString(m.styles.ItemSelected.Render(" " + string(f) + " "))
		} else {
			b.WriteString(m.styles.Muted.Render(" " + string(f) + " "))
		}
	}
	b.WriteString("\n\n")

	if m.recs != nil {
		for _, r := range m.recs.Primary {
			b.WriteString(m.styles.StatValue.Render(r.Title))
			b.WriteString(" - ")
			b.WriteString(r.Description)
			b.WriteString("\n")
			if r.Action != "" {
				b.WriteString(m.styles.Muted.Render("    " + r.Action))
				b.WriteString("\n")
			}
		}
		if len(m.recs.Contextual) > 0 {
			b.WriteString("\n")
			b.WriteString(m.styles.Section.Render("This " + string(m.recs.TimeOfDay)))
			b.WriteString("\n")
			for _, tip := range m.recs.Contextual {
				b.WriteString("  - " + tip + "\n")
			}
		}
	}

	if m.quote != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(m.quote))
		b.WriteString("\n")
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *InsightsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m InsightsModel) load() tea.Cmd {
	services, feeling := m.services, m.Feeling()
	return func() tea.Msg {
		ctx := context.Background()
		insights, err := services.Stats.Insights(ctx, 0)
		if err != nil {
			return insightsLoadedMsg{err: err}
		}
		daily, err := services.Coach.DailyInsight(ctx)
		if err != nil {
			return insightsLoadedMsg{err: err}
		}
		recs, err := services.Coach.Recommend(ctx, string(feeling))
		if err != nil {
			return insightsLoadedMsg{err: err}
		}
		return insightsLoadedMsg{
			insights: insights,
			daily:    daily,
			quote:    services.Coach.Motivation(),
			recs:     recs,
		}
	}
}
