package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xolan/lifetuner/internal/config"
	"github.com/xolan/lifetuner/internal/reminder"
)

// remindCmd represents the remind command
var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run the reminder daemon in the foreground",
	Long: `Send a morning and an evening reminder every day at the configured times.

Reminders are printed to stdout and, when LIFETUNER_TELEGRAM_TOKEN and
[telegram] chat_id are set, sent to Telegram. The morning run also warns
when nothing has been logged for [reminders] missed_days_warning days.

Use --now to send one reminder immediately and exit.

Examples:
  lifetuner remind
  lifetuner remind --now evening`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		now, _ := cmd.Flags().GetString("now")
		runReminders(now)
	},
}

func init() {
	rootCmd.AddCommand(remindCmd)
	remindCmd.Flags().String("now", "", "send one reminder and exit: morning, evening or missed")
}

// buildNotifier prints to stdout and adds Telegram when configured
func buildNotifier(cfg config.Config) reminder.Notifier {
	notifiers := reminder.MultiNotifier{reminder.WriterNotifier{W: deps.Stdout}}
	if cfg.Telegram.Token == "" || cfg.Telegram.ChatID == 0 {
		return notifiers
	}

	tg, err := reminder.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: Telegram disabled: %v\n", err)
		return notifiers
	}
	return append(notifiers, tg)
}

func runReminders(now string) {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	cfg := svcs.Config.Get()
	if now == "" && !cfg.Reminders.Enabled {
		fail("Reminders are disabled", nil,
			"Set enabled = true under [reminders] in the config file",
			"Or send one reminder now with 'lifetuner remind --now morning'")
		return
	}

	loc, err := cfg.Location()
	if err != nil {
		fail("Invalid timezone", err)
		return
	}

	sched, err := reminder.NewScheduler(reminder.Config{
		Morning:           cfg.Reminders.Morning,
		Evening:           cfg.Reminders.Evening,
		Location:          loc,
		MissedDaysWarning: cfg.Reminders.MissedDaysWarning,
	}, svcs.Store().Load, buildNotifier(cfg))
	if err != nil {
		fail("Failed to create reminder schedule", err)
		return
	}

	if now != "" {
		defer func() { _ = sched.Shutdown() }()
		sendNow(sched, now)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched.Start()
	runs := sched.NextRuns()
	names := make([]string, 0, len(runs))
	for name := range runs {
		names = append(names, name)
	}
	sort.Strings(names)
	_, _ = fmt.Fprintln(deps.Stdout, "Reminders running (Ctrl+C to stop)")
	for _, name := range names {
		_, _ = fmt.Fprintf(deps.Stdout, "  %-18s next at %s\n", name, runs[name].Format("2006-01-02 15:04 MST"))
	}

	<-ctx.Done()
	if err := sched.Shutdown(); err != nil {
		fail("Failed to stop reminders", err)
	}
}

func sendNow(sched *reminder.Scheduler, which string) {
	ctx := context.Background()
	var err error
	switch which {
	case string(reminder.KindMorning):
		err = sched.Morning(ctx)
	case string(reminder.KindEvening):
		err = sched.Evening(ctx)
	case "missed":
		err = sched.CheckMissedDays(ctx)
	default:
		fail(fmt.Sprintf("Unknown reminder '%s'", which), nil, "Use --now morning, evening or missed")
		return
	}
	if err != nil {
		fail("Failed to send reminder", err)
	}
}
