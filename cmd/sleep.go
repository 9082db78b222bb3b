package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/service"
)

// sleepCmd groups the sleep timer commands
var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Track sleep with a timer",
	Long: `Start a timer when you go to bed and stop it when you wake up.
Stopping logs the bed and wake time on today's entry.

The timer state persists across terminal sessions.

Examples:
  lifetuner sleep start
  lifetuner sleep start late dinner
  lifetuner sleep stop
  lifetuner sleep status`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sleepStatus()
	},
}

var sleepStartCmd = &cobra.Command{
	Use:   "start [note]",
	Short: "Start the sleep timer now",
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		startSleep(strings.Join(args, " "), force)
	},
}

var sleepStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the sleep timer and log bed and wake time",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stopSleep()
	},
}

var sleepCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the sleep timer without logging",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cancelSleep()
	},
}

var sleepStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the sleep timer is running",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sleepStatus()
	},
}

func init() {
	rootCmd.AddCommand(sleepCmd)
	sleepCmd.AddCommand(sleepStartCmd, sleepStopCmd, sleepCancelCmd, sleepStatusCmd)
	sleepStartCmd.Flags().BoolP("force", "f", false, "replace a sleep timer that is already running")
}

// clockIn formats t as HH:MM in the configured timezone
func clockIn(svcs *service.Services, t time.Time) string {
	loc, err := svcs.Config.Get().Location()
	if err != nil {
		loc = time.Local
	}
	return t.In(loc).Format("15:04")
}

func startSleep(note string, force bool) {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	state, existing, err := svcs.Sleep.Start(note, force)
	if errors.Is(err, service.ErrSleepAlreadyRunning) {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: A sleep timer is already running since %s\n", clockIn(svcs, existing.StartedAt))
		_, _ = fmt.Fprintln(deps.Stderr)
		_, _ = fmt.Fprintln(deps.Stderr, "Options:")
		_, _ = fmt.Fprintln(deps.Stderr, "  - Stop it with 'lifetuner sleep stop'")
		_, _ = fmt.Fprintln(deps.Stderr, "  - Override with 'lifetuner sleep start --force'")
		deps.Exit(1)
		return
	}
	if err != nil {
		fail("Failed to start sleep timer", err, fmt.Sprintf("Check that directory is writable: %s", svcs.Sleep.Path()))
		return
	}

	if existing != nil {
		_, _ = fmt.Fprintf(deps.Stdout, "Replaced sleep timer started at %s\n", clockIn(svcs, existing.StartedAt))
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Sleep timer started at %s. Good night!\n", clockIn(svcs, state.StartedAt))
}

func stopSleep() {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	e, state, err := svcs.Sleep.Stop(context.Background())
	switch {
	case errors.Is(err, service.ErrNoSleepRunning):
		fail("No sleep timer is running", nil, "Start one at bedtime with 'lifetuner sleep start'")
		return
	case errors.Is(err, service.ErrSleepTooLong):
		fail(fmt.Sprintf("Sleep timer started at %s is too old", state.StartedAt.Format("2006-01-02 15:04")), nil,
			"Discard it with 'lifetuner sleep cancel' and log the times with 'lifetuner log --bed --wake'")
		return
	case err != nil:
		fail("Failed to log sleep", err)
		return
	}

	rule := svcs.Config.Get().StatsOptions().Rollover
	d, _ := e.Sleep(rule)
	_, _ = fmt.Fprintf(deps.Stdout, "Good morning! Slept %s (%s-%s)\n", entry.FormatDuration(d), e.BedTime, e.WakeTime)
	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s\n", formatEntry(*e, rule))
}

func cancelSleep() {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	state, err := svcs.Sleep.Cancel()
	if errors.Is(err, service.ErrNoSleepRunning) {
		fail("No sleep timer is running", nil)
		return
	}
	if err != nil {
		fail("Failed to cancel sleep timer", err)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Cancelled sleep timer started at %s\n", clockIn(svcs, state.StartedAt))
}

func sleepStatus() {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	status, err := svcs.Sleep.Status()
	if err != nil {
		fail("Failed to read sleep timer", err)
		return
	}
	if !status.Running {
		_, _ = fmt.Fprintln(deps.Stdout, "No sleep timer running")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Sleeping since %s (%s)\n", clockIn(svcs, status.State.StartedAt), entry.FormatDuration(status.Elapsed))
	if status.State.Note != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Note: %s\n", status.State.Note)
	}
}
