package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/stats"
	"github.com/xolan/lifetuner/internal/tui/ui"
)

const progressWidth = 30

func newProgressBar() progress.Model {
	return progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(progressWidth),
		progress.WithoutPercentage(),
	)
}

// entryDetail renders the logged fields of e without the date
func entryDetail(e entry.Entry, rule entry.RolloverRule) string {
	var parts []string
	if d, ok := e.Sleep(rule); ok {
		parts = append(parts, fmt.Sprintf("sleep %s-%s (%s)", e.BedTime, e.WakeTime, entry.FormatDuration(d)))
	}
	if e.Mood != nil {
		parts = append(parts, fmt.Sprintf("mood %d", *e.Mood))
	}
	if e.Energy != nil {
		parts = append(parts, fmt.Sprintf("energy %d", *e.Energy))
	}
	if len(parts) == 0 {
		return "(nothing logged)"
	}
	return strings.Join(parts, "  ")
}

func severityStyle(styles ui.Styles, s stats.Severity) (string, func(...string) string) {
	switch s {
	case stats.SeverityWarn:
		return "!", styles.InsightWarn.Render
	case stats.SeverityPositive:
		return "+", styles.InsightPositive.Render
	default:
		return "*", styles.InsightInfo.Render
	}
}

func renderInsights(b *strings.Builder, styles ui.Styles, insights []stats.Insight) {
	for _, in := range insights {
		marker, render := severityStyle(styles, in.Severity)
		b.WriteString(render(marker + " " + in.Title))
		b.WriteString("\n    ")
		b.WriteString(in.Text)
		b.WriteString("\n")
	}
}

func renderStatLine(styles ui.Styles, label, value string) string {
	return styles.StatLabel.Render(label) + " " + styles.StatValue.Render(value) + "\n"
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
