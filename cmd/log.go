package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/service"
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a day entry",
	Long: `Log sleep, mood, energy, activities or a note for a day.

Values are merged into the existing entry for the date unless --replace is set,
so a day can be logged in several steps.

Examples:
  lifetuner log --bed 23:00 --wake 07:00
  lifetuner log --mood 4 --energy 7 --activities exercise,reading
  lifetuner log --date yesterday --note "long hike"
  lifetuner log --interactive`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := logOptions{}
		opts.input.Date, _ = cmd.Flags().GetString("date")
		opts.input.BedTime, _ = cmd.Flags().GetString("bed")
		opts.input.WakeTime, _ = cmd.Flags().GetString("wake")
		opts.input.Activities, _ = cmd.Flags().GetString("activities")
		opts.input.Note, _ = cmd.Flags().GetString("note")
		opts.input.Replace, _ = cmd.Flags().GetBool("replace")
		opts.interactive, _ = cmd.Flags().GetBool("interactive")
		if cmd.Flags().Changed("mood") {
			v, _ := cmd.Flags().GetInt("mood")
			opts.input.Mood = &v
		}
		if cmd.Flags().Changed("energy") {
			v, _ := cmd.Flags().GetInt("energy")
			opts.input.Energy = &v
		}
		runLog(opts)
	},
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringP("date", "d", "", "date to log (YYYY-MM-DD, DD/MM/YYYY, yesterday; default today)")
	logCmd.Flags().String("bed", "", "bed time (HH:MM)")
	logCmd.Flags().String("wake", "", "wake time (HH:MM)")
	logCmd.Flags().IntP("mood", "m", 0, "mood (1-5)")
	logCmd.Flags().IntP("energy", "e", 0, "energy (1-10)")
	logCmd.Flags().StringP("activities", "a", "", "comma separated activities (e.g., exercise,reading)")
	logCmd.Flags().StringP("note", "n", "", "free text note")
	logCmd.Flags().Bool("replace", false, "replace the stored entry instead of merging")
	logCmd.Flags().BoolP("interactive", "i", false, "fill in the entry with a form")
}

type logOptions struct {
	input       service.EntryInput
	interactive bool
}

func runLog(opts logOptions) {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	in := opts.input
	if opts.interactive {
		fm := newLogFormModel(in)
		if err := deps.RunForm(newLogForm(fm)); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				_, _ = fmt.Fprintln(deps.Stdout, "Cancelled")
				return
			}
			fail("Failed to run the entry form", err)
			return
		}
		in = fm.toInput(in)
	}

	e, err := svcs.Entry.Log(context.Background(), in)
	if err != nil {
		fail("Failed to log entry", err,
			"Mood is 1-5, energy 1-10, times are HH:MM and sleep must be 3-12 hours",
			"Use 'lifetuner log --help' for all flags")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s\n", formatEntry(*e, svcs.Config.Get().StatsOptions().Rollover))
	if !e.Completed() {
		_, _ = fmt.Fprintln(deps.Stdout, "Entry is partial: log mood, energy, bed and wake time to count it toward your streak.")
	}
}

// logFormModel holds the string values bound to the entry form
type logFormModel struct {
	Date       string
	BedTime    string
	WakeTime   string
	Mood       int
	Energy     int
	Activities []string
	Note       string
}

func newLogFormModel(in service.EntryInput) *logFormModel {
	fm := &logFormModel{
		Date:     in.Date,
		BedTime:  in.BedTime,
		WakeTime: in.WakeTime,
		Note:     in.Note,
	}
	if in.Mood != nil {
		fm.Mood = *in.Mood
	}
	if in.Energy != nil {
		fm.Energy = *in.Energy
	}
	if acts, err := entry.ParseActivities(in.Activities); err == nil {
		fm.Activities = acts
	}
	return fm
}

// toInput converts the form values back into service input; a zero
// mood or energy means the field was skipped
func (fm *logFormModel) toInput(base service.EntryInput) service.EntryInput {
	in := service.EntryInput{
		Date:       strings.TrimSpace(fm.Date),
		BedTime:    strings.TrimSpace(fm.BedTime),
		WakeTime:   strings.TrimSpace(fm.WakeTime),
		Activities: strings.Join(fm.Activities, ","),
		Note:       strings.TrimSpace(fm.Note),
		Replace:    base.Replace,
	}
	if fm.Mood > 0 {
		in.Mood = entry.IntPtr(fm.Mood)
	}
	if fm.Energy > 0 {
		in.Energy = entry.IntPtr(fm.Energy)
	}
	return in
}

func validateOptionalClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := entry.ParseClock(strings.TrimSpace(s))
	return err
}

// newLogForm builds the interactive entry form bound to fm
func newLogForm(fm *logFormModel) *huh.Form {
	moods := []huh.Option[int]{huh.NewOption("skip", 0)}
	for v := entry.MinMood; v <= entry.MaxMood; v++ {
		moods = append(moods, huh.NewOption(strconv.Itoa(v), v))
	}
	energies := []huh.Option[int]{huh.NewOption("skip", 0)}
	for v := entry.MinEnergy; v <= entry.MaxEnergy; v++ {
		energies = append(energies, huh.NewOption(strconv.Itoa(v), v))
	}
	activities := make([]huh.Option[string], 0, len(entry.KnownActivities))
	for _, a := range entry.KnownActivities {
		activities = append(activities, huh.NewOption(a, a))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, DD/MM/YYYY or yesterday; empty for today").
				Value(&fm.Date),
			huh.NewInput().
				Title("Bed time (HH:MM)").
				Value(&fm.BedTime).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("Wake time (HH:MM)").
				Value(&fm.WakeTime).
				Validate(validateOptionalClock),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Mood (1-5)").
				Options(moods...).
				Value(&fm.Mood),
			huh.NewSelect[int]().
				Title("Energy (1-10)").
				Options(energies...).
				Value(&fm.Energy),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Activities").
				Options(activities...).
				Value(&fm.Activities),
			huh.NewText().
				Title("Note").
				Value(&fm.Note),
		),
	).WithTheme(huh.ThemeDracula())
}
