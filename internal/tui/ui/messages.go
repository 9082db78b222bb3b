package ui

import "github.com/xolan/lifetuner/internal/config"

// ConfigChangedMsg is sent after settings were saved from the config view.
type ConfigChangedMsg struct {
	Config config.Config
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// DataChangedMsg is sent after the habit log was modified from a view.
type DataChangedMsg struct{}
