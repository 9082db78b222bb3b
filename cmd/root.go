package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lifetuner",
	Short: "A habit tracker for sleep, mood, energy and activity",
	Long: `lifetuner logs one entry per day (sleep times, mood, energy, activities)
and turns the log into streaks, averages, goal progress and insights.

Usage:
  lifetuner                                    Show today's summary
  lifetuner log --bed 23:00 --wake 07:00       Log last night's sleep
  lifetuner log --mood 4 --energy 7 -a exercise,reading
  lifetuner log --interactive                  Log with a form
  lifetuner list --last 7                      List the last 7 days
  lifetuner stats                              Streaks, averages and patterns
  lifetuner progress                           Goal progress with alerts
  lifetuner recommend tired                    Suggestions for how you feel
  lifetuner tui                                Interactive dashboard

Mood is 1-5, energy 1-10, times are HH:MM.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		window, _ := cmd.Flags().GetInt("window")
		showSummary(window)
	},
}

func init() {
	rootCmd.Flags().IntP("window", "w", 0, "trailing window in days (default from config)")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"lifetuner version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// showSummary prints today's dashboard
func showSummary(window int) {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	s, err := svcs.Stats.Summary(context.Background(), window)
	if err != nil {
		fail("Failed to compute summary", err)
		return
	}

	printHeader(fmt.Sprintf("lifetuner - %s", s.Date))
	_, _ = fmt.Fprintf(deps.Stdout, "Today's entry:  %s\n", entryStatus(s.Today))
	if s.Today != nil {
		_, _ = fmt.Fprintf(deps.Stdout, "                %s\n", formatEntry(*s.Today, svcs.Config.Get().StatsOptions().Rollover))
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Streak:         %d %s (longest %d)\n", s.Streak.Current, pluralize("day", s.Streak.Current), s.Streak.Longest)

	printSection(fmt.Sprintf("Last %d %s (%d %s)", s.WindowDays, pluralize("day", s.WindowDays), s.EntriesInWindow, pluralize("entry", s.EntriesInWindow)))
	_, _ = fmt.Fprintf(deps.Stdout, "  Mood:    %s\n", s.Mood)
	_, _ = fmt.Fprintf(deps.Stdout, "  Energy:  %s\n", s.Energy)
	_, _ = fmt.Fprintf(deps.Stdout, "  Sleep:   %s\n", s.Sleep)

	printSection("Goal progress")
	printProgress(s.Progress.Capped())
	for _, a := range s.Alerts {
		_, _ = fmt.Fprintf(deps.Stdout, "  > %s\n", a.Message())
	}

	printSection("Insights")
	printInsights(s.Insights)
	_, _ = fmt.Fprintln(deps.Stdout)
}
