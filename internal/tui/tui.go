// Package tui provides the terminal dashboard for lifetuner.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/lifetuner/internal/logger"
	"github.com/xolan/lifetuner/internal/service"
	"github.com/xolan/lifetuner/internal/tui/ui"
	"github.com/xolan/lifetuner/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabDashboard Tab = iota
	TabEntries
	TabInsights
	TabConfig
)

var tabNames = []string{"Dashboard", "Entries", "Insights", "Config"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	activeTab Tab
	width     int
	height    int
	showHelp  bool

	dashboardView views.DashboardModel
	entriesView   views.EntriesModel
	insightsView  views.InsightsModel
	configView    views.ConfigModel

	themes    *ui.Themes
	themeName string
	styles    ui.Styles
	keys      ui.KeyMap
	help      help.Model
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themes := ui.LoadThemes()
	themeName := themes.Resolve(services.Config.Get().Theme)
	styles := themes.Styles(themeName)
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabDashboard,
		themes:        themes,
		themeName:     themeName,
		styles:        styles,
		keys:          keys,
		help:          help.New(),
		dashboardView: views.NewDashboardModel(services, styles, keys),
		entriesView:   views.NewEntriesModel(services, styles, keys),
		insightsView:  views.NewInsightsModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themes, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashboardView.Init(),
		m.entriesView.Init(),
		m.insightsView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		capturing := m.isCapturingKeys()

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !capturing:
			return m.switchTab(Tab((int(m.activeTab) + 1) % len(tabNames)))

		case key.Matches(msg, m.keys.PrevTab) && !capturing:
			return m.switchTab(Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))

		case key.Matches(msg, m.keys.Tab1) && !capturing:
			return m.switchTab(TabDashboard)

		case key.Matches(msg, m.keys.Tab2) && !capturing:
			return m.switchTab(TabEntries)

		case key.Matches(msg, m.keys.Tab3) && !capturing:
			return m.switchTab(TabInsights)

		case key.Matches(msg, m.keys.Tab4) && !capturing:
			return m.switchTab(TabConfig)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		contentHeight := m.height - 4
		m.dashboardView.SetSize(m.width, contentHeight)
		m.entriesView.SetSize(m.width, contentHeight)
		m.insightsView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.DataChangedMsg:
		var c1, c2, c3 tea.Cmd
		m.dashboardView, c1 = m.dashboardView.Update(msg)
		m.entriesView, c2 = m.entriesView.Update(msg)
		m.insightsView, c3 = m.insightsView.Update(msg)
		return m, tea.Batch(c1, c2, c3)

	case ui.ConfigChangedMsg:
		m.services.ApplyConfig(msg.Config)
		logger.Info("settings applied", "window_days", msg.Config.WindowDays,
			"sleep_rollover", msg.Config.SleepRollover, "energy_progress", msg.Config.EnergyProgress)
		if name := m.themes.Resolve(msg.Config.Theme); name != m.themeName {
			m.themeName = name
			m.styles = m.themes.Styles(name)

			themeMsg := ui.ThemeChangedMsg{ThemeName: name, Styles: m.styles}
			m.dashboardView, _ = m.dashboardView.Update(themeMsg)
			m.entriesView, _ = m.entriesView.Update(themeMsg)
			m.insightsView, _ = m.insightsView.Update(themeMsg)
			m.configView, _ = m.configView.Update(themeMsg)
		}

		var c1, c2, c3 tea.Cmd
		m.dashboardView, c1 = m.dashboardView.Update(msg)
		m.entriesView, c2 = m.entriesView.Update(msg)
		m.insightsView, c3 = m.insightsView.Update(ui.DataChangedMsg{})
		return m, tea.Batch(c1, c2, c3)
	}

	return m.updateActive(msg)
}

// updateActive routes msg to the visible view. Load results are routed to
// their own view regardless of the active tab.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if _, isKey := msg.(tea.KeyMsg); !isKey {
		var c1, c2, c3, c4 tea.Cmd
		m.dashboardView, c1 = m.dashboardView.Update(msg)
		m.entriesView, c2 = m.entriesView.Update(msg)
		m.insightsView, c3 = m.insightsView.Update(msg)
		m.configView, c4 = m.configView.Update(msg)
		return m, tea.Batch(c1, c2, c3, c4)
	}

	switch m.activeTab {
	case TabDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case TabEntries:
		m.entriesView, cmd = m.entriesView.Update(msg)
	case TabInsights:
		m.insightsView, cmd = m.insightsView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}
	return m, cmd
}

func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.activeTab = tab
	return m, m.initCurrentView()
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabDashboard:
		b.WriteString(m.dashboardView.View())
	case TabEntries:
		b.WriteString(m.entriesView.View())
	case TabInsights:
		b.WriteString(m.insightsView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.styles.Dialog.Render(m.help.View(m.keys)))
	} else {
		b.WriteString(m.renderStatusBar())
	}

	return m.styles.App.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar shows the keys relevant to the active view
func (m Model) renderStatusBar() string {
	var parts []string

	switch m.activeTab {
	case TabDashboard:
		parts = append(parts, m.renderKeyHelp("-/+", "window"))
	case TabEntries:
		if m.entriesView.IsInputMode() {
			parts = append(parts, m.renderKeyHelp("y", "confirm"), m.renderKeyHelp("any", "cancel"))
		} else {
			parts = append(parts, m.renderKeyHelp("j/k", "move"), m.renderKeyHelp("d", "delete"), m.renderKeyHelp("-/+", "window"))
		}
	case TabInsights:
		parts = append(parts, m.renderKeyHelp("h/l", "feeling"))
	case TabConfig:
		if m.configView.IsInputMode() {
			parts = append(parts, m.renderKeyHelp("Enter", "save"), m.renderKeyHelp("Esc", "discard"))
		} else {
			parts = append(parts, m.renderKeyHelp("j/k", "setting"), m.renderKeyHelp("h/l", "change"))
		}
	}

	if !m.isCapturingKeys() {
		parts = append(parts,
			m.renderKeyHelp("r", "refresh"),
			m.renderKeyHelp("1-4", "views"),
			m.renderKeyHelp("?", "help"),
			m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

func (m Model) renderKeyHelp(key, desc string) string {
	return m.styles.StatusKey.Render(key) + " " + m.styles.StatusHelp.Render(desc)
}

// isCapturingKeys reports whether the active view consumes every key
func (m Model) isCapturingKeys() bool {
	switch m.activeTab {
	case TabEntries:
		return m.entriesView.IsInputMode()
	case TabConfig:
		return m.configView.IsInputMode()
	}
	return false
}

func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabDashboard:
		return m.dashboardView.Init()
	case TabEntries:
		return m.entriesView.Init()
	case TabInsights:
		return m.insightsView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// Run starts the TUI application
func Run(services *service.Services) error {
	p := tea.NewProgram(New(services), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
