package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/lifetuner/internal/goal"
	"github.com/xolan/lifetuner/internal/service"
)

// goalsCmd represents the goals command
var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show or change your goals",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showGoals()
	},
}

var goalsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your goals",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showGoals()
	},
}

// goalsSetCmd represents the goals set command
var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one or more goals",
	Long: `Change goals. Only the given flags are updated.

Examples:
  lifetuner goals set --sleep 7.5
  lifetuner goals set --energy 6 --exercise 4 --mood 4`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var u service.GoalUpdate
		if cmd.Flags().Changed("sleep") {
			v, _ := cmd.Flags().GetFloat64("sleep")
			u.SleepHours = &v
		}
		if cmd.Flags().Changed("energy") {
			v, _ := cmd.Flags().GetInt("energy")
			u.MinEnergy = &v
		}
		if cmd.Flags().Changed("exercise") {
			v, _ := cmd.Flags().GetInt("exercise")
			u.ExerciseFrequency = &v
		}
		if cmd.Flags().Changed("mood") {
			v, _ := cmd.Flags().GetInt("mood")
			u.MoodTarget = &v
		}
		setGoals(u)
	},
}

func init() {
	rootCmd.AddCommand(goalsCmd)
	goalsCmd.AddCommand(goalsShowCmd, goalsSetCmd)

	goalsSetCmd.Flags().Float64("sleep", 0, fmt.Sprintf("sleep hours per night (%g-%g)", goal.MinSleepHours, goal.MaxSleepHours))
	goalsSetCmd.Flags().Int("energy", 0, fmt.Sprintf("minimum daily energy (%d-%d)", goal.MinEnergyTarget, goal.MaxEnergyTarget))
	goalsSetCmd.Flags().Int("exercise", 0, fmt.Sprintf("exercise days per week (%d-%d)", goal.MinExerciseFrequency, goal.MaxExerciseFrequency))
	goalsSetCmd.Flags().Int("mood", 0, fmt.Sprintf("mood target (%d-%d)", goal.MinMoodTarget, goal.MaxMoodTarget))
}

func printGoals(g goal.Goals) {
	_, _ = fmt.Fprintf(deps.Stdout, "  Sleep:     %.1f hours per night\n", g.SleepHours)
	_, _ = fmt.Fprintf(deps.Stdout, "  Energy:    at least %d\n", g.MinEnergy)
	_, _ = fmt.Fprintf(deps.Stdout, "  Exercise:  %d %s per week\n", g.ExerciseFrequency, pluralize("day", g.ExerciseFrequency))
	_, _ = fmt.Fprintf(deps.Stdout, "  Mood:      at least %d\n", g.MoodTarget)
	if g.UpdatedAt != nil {
		_, _ = fmt.Fprintf(deps.Stdout, "  Updated:   %s\n", g.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func showGoals() {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	g, err := svcs.Goal.Get(context.Background())
	if err != nil {
		fail("Failed to read goals", err)
		return
	}
	printHeader("Goals")
	printGoals(g)
}

func setGoals(u service.GoalUpdate) {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	g, err := svcs.Goal.Set(context.Background(), u)
	if errors.Is(err, service.ErrNoChangesSpecified) {
		fail("No goal specified", nil, "Use --sleep, --energy, --exercise or --mood")
		return
	}
	if err != nil {
		fail("Failed to update goals", err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, "Goals updated:")
	printGoals(g)
}
