package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/lifetuner/internal/stats"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks, averages and patterns",
	Long: `Show streaks, windowed averages and pattern analysis:
most common mood, most energetic hour, sleep quality, focus and activities.

Examples:
  lifetuner stats
  lifetuner stats --window 30`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		window, _ := cmd.Flags().GetInt("window")
		showStats(window)
	},
}

// insightsCmd represents the insights command
var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show insights about your recent habits",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		window, _ := cmd.Flags().GetInt("window")
		showInsights(window)
	},
}

// progressCmd represents the progress command
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show goal progress and alerts",
	Long: `Show progress toward the sleep, energy, exercise and mood goals.

Percentages are capped at 100% unless --raw is given.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		window, _ := cmd.Flags().GetInt("window")
		raw, _ := cmd.Flags().GetBool("raw")
		showProgress(window, raw)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(progressCmd)

	for _, c := range []*cobra.Command{statsCmd, insightsCmd, progressCmd} {
		c.Flags().IntP("window", "w", 0, "trailing window in days (default from config)")
	}
	progressCmd.Flags().Bool("raw", false, "show uncapped percentages")
}

func showStats(window int) {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	r, err := svcs.Stats.Patterns(context.Background(), window)
	if err != nil {
		fail("Failed to compute statistics", err)
		return
	}

	printHeader(fmt.Sprintf("Statistics for the last %d %s (to %s)", r.WindowDays, pluralize("day", r.WindowDays), r.Date))
	_, _ = fmt.Fprintf(deps.Stdout, "Current streak:      %d %s\n", r.Streak.Current, pluralize("day", r.Streak.Current))
	_, _ = fmt.Fprintf(deps.Stdout, "Longest streak:      %d %s\n", r.Streak.Longest, pluralize("day", r.Streak.Longest))
	if r.HasEntries {
		_, _ = fmt.Fprintf(deps.Stdout, "Last entry:          %d %s ago\n", r.DaysSinceLast, pluralize("day", r.DaysSinceLast))
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Last entry:          never")
	}

	printSection("Averages")
	_, _ = fmt.Fprintf(deps.Stdout, "  Mood:    %s\n", r.Mood)
	_, _ = fmt.Fprintf(deps.Stdout, "  Energy:  %s\n", r.Energy)
	_, _ = fmt.Fprintf(deps.Stdout, "  Sleep:   %s\n", r.Sleep)

	printSection("Patterns")
	_, _ = fmt.Fprintf(deps.Stdout, "  Most common mood:     %s\n", optionalInt(r.MostCommonMood))
	_, _ = fmt.Fprintf(deps.Stdout, "  Best mood:            %s\n", optionalInt(r.BestMood))
	if r.HasEnergeticHour {
		_, _ = fmt.Fprintf(deps.Stdout, "  Most energetic hour:  %02d:00\n", r.MostEnergeticHour)
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "  Most energetic hour:  %s\n", stats.NotAvailable)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "  Sleep quality:        %s\n", r.SleepQuality)
	_, _ = fmt.Fprintf(deps.Stdout, "  Focus:                %s\n", r.Focus)

	if len(r.Activities) > 0 {
		printSection("Activities")
		for _, a := range r.Activities {
			_, _ = fmt.Fprintf(deps.Stdout, "  %-12s %d %s\n", a.Activity, a.Days, pluralize("day", a.Days))
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout)
}

func optionalInt(v int) string {
	if v == 0 {
		return stats.NotAvailable
	}
	return fmt.Sprintf("%d", v)
}

func showInsights(window int) {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	insights, err := svcs.Stats.Insights(context.Background(), window)
	if err != nil {
		fail("Failed to generate insights", err)
		return
	}

	printHeader("Insights")
	printInsights(insights)
}

func showProgress(window int, raw bool) {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	r, err := svcs.Stats.Progress(context.Background(), window)
	if err != nil {
		fail("Failed to compute goal progress", err)
		return
	}

	printHeader(fmt.Sprintf("Goal progress (last %d %s)", r.WindowDays, pluralize("day", r.WindowDays)))
	_, _ = fmt.Fprintf(deps.Stdout, "Goals: sleep %.1fh, energy >= %d, exercise %dx/week, mood >= %d\n\n",
		r.Goals.SleepHours, r.Goals.MinEnergy, r.Goals.ExerciseFrequency, r.Goals.MoodTarget)
	if raw {
		printProgress(r.Raw)
	} else {
		printProgress(r.Capped)
	}

	if len(r.Alerts) > 0 {
		printSection("Alerts")
		for _, a := range r.Alerts {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", a.Message())
		}
	}
}
