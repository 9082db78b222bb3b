package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/service"
	"github.com/xolan/lifetuner/internal/tui/ui"
)

// EntriesModel lists the entries of the trailing window, newest first
type EntriesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width      int
	height     int
	window     int
	entries    []entry.Entry
	cursor     int
	confirming bool
	status     string
	loading    bool
	err        error
}

// NewEntriesModel creates the entries view
func NewEntriesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	return EntriesModel{
		services: services,
		styles:   styles,
		keys:     keys,
		window:   services.Config.Get().WindowDays,
		loading:  true,
	}
}

type entriesLoadedMsg struct {
	entries []entry.Entry
	err     error
}

type entryDeletedMsg struct {
	date string
	err  error
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return m.load()
}

// IsInputMode reports whether a delete confirmation is pending
func (m EntriesModel) IsInputMode() bool {
	return m.confirming
}

// Selected returns the entry under the cursor
func (m EntriesModel) Selected() (entry.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return entry.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirming {
			m.confirming = false
			if key.Matches(msg, m.keys.Confirm) {
				if e, ok := m.Selected(); ok {
					return m, m.delete(e.Date)
				}
			}
			m.status = "Deletion cancelled"
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Delete):
			if _, ok := m.Selected(); ok {
				m.confirming = true
				m.status = ""
			}
		case key.Matches(msg, m.keys.Shorter):
			if m.window > 1 {
				m.window--
				return m, m.load()
			}
		case key.Matches(msg, m.keys.Longer):
			m.window++
			return m, m.load()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load()
		}

	case entriesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		if m.cursor >= len(m.entries) {
			m.cursor = max(0, len(m.entries)-1)
		}

	case entryDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Failed to delete %s: %v", msg.date, msg.err)
			return m, nil
		}
		m.status = "Deleted entry for " + msg.date
		return m, tea.Batch(m.load(), func() tea.Msg { return ui.DataChangedMsg{} })

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
func (m EntriesModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Entries - last %d %s", m.window, pluralize("day", m.window))))
	b.WriteString("\n")

	switch {
	case m.loading && m.entries == nil:
		b.WriteString("Loading...")
		return b.String()
	case m.err != nil:
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	case len(m.entries) == 0:
		b.WriteString(m.styles.Muted.Render("No entries found"))
		b.WriteString("\n")
	}

	rule := m.services.Config.Get().StatsOptions().Rollover
	for i, e := range m.entries {
		line := m.styles.EntryDate.Render(e.Date) + " " + m.styles.EntryDetail.Render(entryDetail(e, rule))
		if len(e.Activities) > 0 {
			line += " " + m.styles.EntryTag.Render("["+strings.Join(e.Activities, ", ")+"]")
		}
		if i == m.cursor {
			b.WriteString(m.styles.ItemSelected.Render("▸ " + line))
		} else {
			b.WriteString(m.styles.ItemNormal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if e, ok := m.Selected(); ok && e.Note != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("Note: " + e.Note))
		b.WriteString("\n")
	}

	if m.confirming {
		e, _ := m.Selected()
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf("Delete entry for %s? [y/N]", e.Date)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(m.status))
		b.WriteString("\n")
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m EntriesModel) load() tea.Cmd {
	services, window := m.services, m.window
	return func() tea.Msg {
		result, err := services.Entry.ListRange(context.Background(), "", "", window)
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		entries := make([]entry.Entry, 0, len(result.Entries))
		for i := len(result.Entries) - 1; i >= 0; i-- {
			entries = append(entries, result.Entries[i])
		}
		return entriesLoadedMsg{entries: entries}
	}
}

func (m EntriesModel) delete(date string) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		key, err := services.Entry.Delete(context.Background(), date)
		if key == "" {
			key = date
		}
		return entryDeletedMsg{date: key, err: err}
	}
}
