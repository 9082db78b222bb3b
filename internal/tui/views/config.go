package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/lifetuner/internal/config"
	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/service"
	"github.com/xolan/lifetuner/internal/stats"
	"github.com/xolan/lifetuner/internal/tui/ui"
)

// Setting identifies an editable row of the config view
type Setting int

const (
	SettingWindow Setting = iota
	SettingRollover
	SettingEnergy
	SettingTheme
	settingCount
)

var settingLabels = [settingCount]string{"window_days", "sleep_rollover", "energy_progress", "theme"}

var (
	rolloverModes = []string{entry.RolloverStrict.String(), entry.RolloverInclusive.String()}
	energyModes   = []string{stats.EnergyThreshold.String(), stats.EnergyAverage.String()}
)

// ConfigModel edits the settings that shape the aggregates and the look.
// Changes are kept as a draft until saved with Select or dropped with Back.
type ConfigModel struct {
	services *service.Services
	themes   *ui.Themes
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	saved  config.Config
	draft  config.Config
	path   string
	exists bool
	cursor Setting
	status string
	err    error
}

// NewConfigModel creates the config view over the current configuration
func NewConfigModel(services *service.Services, themes *ui.Themes, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	cfg := services.Config.Get()
	cfg.Theme = themes.Resolve(cfg.Theme)
	return ConfigModel{
		services: services,
		themes:   themes,
		styles:   styles,
		keys:     keys,
		saved:    cfg,
		draft:    cfg,
		path:     services.Config.GetPath(),
	}
}

type configLoadedMsg struct {
	config config.Config
	exists bool
}

type settingsSavedMsg struct {
	config config.Config
	err    error
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	svc := m.services.Config
	return func() tea.Msg {
		return configLoadedMsg{config: svc.Get(), exists: svc.Exists()}
	}
}

// Cursor returns the selected setting
func (m ConfigModel) Cursor() Setting {
	return m.cursor
}

// Draft returns the unsaved settings
func (m ConfigModel) Draft() config.Config {
	return m.draft
}

// Dirty reports whether the draft differs from the saved settings
func (m ConfigModel) Dirty() bool {
	return m.draft.WindowDays != m.saved.WindowDays ||
		m.draft.SleepRollover != m.saved.SleepRollover ||
		m.draft.EnergyProgress != m.saved.EnergyProgress ||
		m.draft.Theme != m.saved.Theme
}

// IsInputMode reports whether unsaved changes hold the keyboard
func (m ConfigModel) IsInputMode() bool {
	return m.Dirty()
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case configLoadedMsg:
		if m.Dirty() {
			return m, nil
		}
		msg.config.Theme = m.themes.Resolve(msg.config.Theme)
		m.saved, m.draft = msg.config, msg.config
		m.exists = msg.exists

	case settingsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.exists = true
		m.status = "Settings saved"
		cfg := msg.config
		cfg.Theme = m.themes.Resolve(cfg.Theme)
		m.saved, m.draft = cfg, cfg
		return m, func() tea.Msg { return ui.ConfigChangedMsg{Config: msg.config} }

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

func (m ConfigModel) handleKey(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < settingCount-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Right):
		m.adjust(1)
	case key.Matches(msg, m.keys.Shorter):
		m.adjust(-7)
	case key.Matches(msg, m.keys.Longer):
		m.adjust(7)
	case key.Matches(msg, m.keys.Select):
		if m.Dirty() {
			return m, m.save()
		}
	case key.Matches(msg, m.keys.Back):
		if m.Dirty() {
			m.draft = m.saved
			m.status = "Changes discarded"
			m.err = nil
		}
	}
	return m, nil
}

// adjust moves the selected setting by delta steps.
// Window days move by delta; the others cycle by its sign.
func (m *ConfigModel) adjust(delta int) {
	step := 1
	if delta < 0 {
		step = -1
	}
	m.status = ""

	switch m.cursor {
	case SettingWindow:
		m.draft.WindowDays = max(1, min(config.MaxWindowDays, m.draft.WindowDays+delta))
	case SettingRollover:
		m.draft.SleepRollover = cycle(rolloverModes, m.draft.SleepRollover, step)
	case SettingEnergy:
		m.draft.EnergyProgress = cycle(energyModes, m.draft.EnergyProgress, step)
	case SettingTheme:
		m.draft.Theme = m.themes.Step(m.draft.Theme, step)
	}
}

// save writes the draft over the full current config
func (m ConfigModel) save() tea.Cmd {
	svc := m.services.Config
	draft := m.draft
	return func() tea.Msg {
		cfg := svc.Get()
		cfg.WindowDays = draft.WindowDays
		cfg.SleepRollover = draft.SleepRollover
		cfg.EnergyProgress = draft.EnergyProgress
		cfg.Theme = draft.Theme
		if err := svc.Update(cfg); err != nil {
			return settingsSavedMsg{err: err}
		}
		return settingsSavedMsg{config: svc.Get()}
	}
}

// cycle returns the option step positions away from current; unknown values start at the first
func cycle(options []string, current string, step int) string {
	i := 0
	for j, o := range options {
		if o == current {
			i = j
			break
		}
	}
	n := len(options)
	return options[((i+step)%n+n)%n]
}

func (m ConfigModel) value(s Setting, cfg config.Config) string {
	switch s {
	case SettingWindow:
		return fmt.Sprintf("%d %s", cfg.WindowDays, pluralize("day", cfg.WindowDays))
	case SettingRollover:
		return cfg.SleepRollover
	case SettingEnergy:
		return cfg.EnergyProgress
	case SettingTheme:
		return cfg.Theme
	}
	return ""
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(renderStatLine(m.styles, "Config file:", m.path))
	if m.exists {
		b.WriteString(renderStatLine(m.styles, "Status:", "saved to file"))
	} else {
		b.WriteString(renderStatLine(m.styles, "Status:", "defaults (no config file)"))
	}
	b.WriteString("\n")

	for s := Setting(0); s < settingCount; s++ {
		val := m.value(s, m.draft)
		if m.value(s, m.saved) != val {
			val += " *"
		}
		if s == m.cursor {
			b.WriteString(m.styles.ItemSelected.Render("▸ " + settingLabels[s]))
			b.WriteString("  ")
			b.WriteString(m.styles.StatValue.Render("‹ " + val + " ›"))
		} else {
			b.WriteString(m.styles.ItemNormal.Render("  " + settingLabels[s]))
			b.WriteString("  ")
			b.WriteString(m.styles.StatValue.Render(val))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Section.Render("Read only"))
	b.WriteString("\n")
	b.WriteString(renderStatLine(m.styles, "timezone", m.saved.Timezone))
	b.WriteString(renderStatLine(m.styles, "storage", m.saved.Storage.Backend))
	reminders := "disabled"
	if m.saved.Reminders.Enabled {
		reminders = m.saved.Reminders.Morning + ", " + m.saved.Reminders.Evening
	}
	b.WriteString(renderStatLine(m.styles, "reminders", reminders))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("Save failed: " + m.err.Error()))
	case m.status != "":
		b.WriteString(m.styles.Success.Render(m.status))
	case m.Dirty():
		b.WriteString(m.styles.Warning.Render("Unsaved changes: Enter to save, Esc to discard"))
	default:
		b.WriteString(m.styles.Muted.Render("↑/↓ choose a setting, ←/→ change it, -/+ by a week"))
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
