package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	if styles.App.GetPaddingTop() != 1 || styles.App.GetPaddingLeft() != 2 {
		t.Error("expected App padding of 1, 2")
	}
	if !styles.TabActive.GetBold() {
		t.Error("expected active tab to be bold")
	}
	if styles.TabInactive.GetBold() {
		t.Error("expected inactive tab not to be bold")
	}
	if styles.StatLabel.GetWidth() != 18 {
		t.Errorf("expected StatLabel width 18, got %d", styles.StatLabel.GetWidth())
	}
}

func TestThemes_Styles(t *testing.T) {
	styles := LoadThemes().Styles(DefaultTheme)

	if !styles.ViewTitle.GetBold() {
		t.Error("expected view title to be bold")
	}
	if styles.Dialog.GetBorderStyle() != lipgloss.RoundedBorder() {
		t.Error("expected dialog to use a rounded border")
	}
	for name, s := range map[string]lipgloss.Style{
		"InsightWarn":     styles.InsightWarn,
		"InsightInfo":     styles.InsightInfo,
		"InsightPositive": styles.InsightPositive,
	} {
		if !s.GetBold() {
			t.Errorf("expected %s to be bold", name)
		}
	}
}

func TestStyles_Render(t *testing.T) {
	styles := DefaultStyles()

	out := styles.StatValue.Render("7.5")
	if out == "" {
		t.Error("expected rendered output")
	}
}
