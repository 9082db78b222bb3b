package cmd

import (
	"fmt"
	"strings"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/stats"
)

const ruleWidth = 60

func printHeader(title string) {
	_, _ = fmt.Fprintln(deps.Stdout, title)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", ruleWidth))
}

func printSection(title string) {
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, title)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", ruleWidth))
}

// formatEntry renders one entry on a single line
func formatEntry(e entry.Entry, rule entry.RolloverRule) string {
	parts := []string{e.Date}

	if e.HasSleep() {
		sleep := fmt.Sprintf("%s-%s", e.BedTime, e.WakeTime)
		if d, ok := e.Sleep(rule); ok {
			sleep += " (" + entry.FormatDuration(d) + ")"
		}
		parts = append(parts, "sleep "+sleep)
	} else if e.BedTime != nil {
		parts = append(parts, "bed "+e.BedTime.String())
	} else if e.WakeTime != nil {
		parts = append(parts, "wake "+e.WakeTime.String())
	}
	if e.Mood != nil {
		parts = append(parts, fmt.Sprintf("mood %d", *e.Mood))
	}
	if e.Energy != nil {
		parts = append(parts, fmt.Sprintf("energy %d", *e.Energy))
	}
	if len(e.Activities) > 0 {
		parts = append(parts, "["+strings.Join(e.Activities, ", ")+"]")
	}
	if e.Note != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Note))
	}
	return strings.Join(parts, "  ")
}

// entryStatus describes how much of an entry has been logged
func entryStatus(e *entry.Entry) string {
	switch {
	case e == nil:
		return "not logged yet"
	case e.Completed():
		return "complete"
	default:
		return "partial"
	}
}

// progressBar renders pct (0-100) as a fixed width bar
func progressBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func printProgress(p stats.Progress) {
	for _, row := range []struct {
		name string
		pct  float64
	}{
		{"Sleep", p.Sleep},
		{"Energy", p.Energy},
		{"Exercise", p.Exercise},
		{"Mood", p.Mood},
	} {
		_, _ = fmt.Fprintf(deps.Stdout, "  %-9s %6.1f%%  %s\n", row.name, row.pct, progressBar(row.pct, 20))
	}
}

func severityMarker(s stats.Severity) string {
	switch s {
	case stats.SeverityWarn:
		return "!"
	case stats.SeverityPositive:
		return "+"
	default:
		return "*"
	}
}

func printInsights(insights []stats.Insight) {
	for _, in := range insights {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s %s\n", severityMarker(in.Severity), in.Title)
		_, _ = fmt.Fprintf(deps.Stdout, "    %s\n", in.Text)
	}
}
