package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/xolan/lifetuner/internal/coach"
	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/logger"
	"github.com/xolan/lifetuner/internal/stats"
	"github.com/xolan/lifetuner/internal/timeutil"
)

// Job names
const (
	JobMorning = "morning-reminder"
	JobEvening = "evening-reminder"
)

// LoadFunc returns a fresh snapshot of the habit log
type LoadFunc func(ctx context.Context) (entry.Log, error)

// Config configures reminder times
type Config struct {
	// Morning and Evening are HH:MM in Location
	Morning  string
	Evening  string
	Location *time.Location
	// MissedDaysWarning is the entry age in days that triggers a warning
	MissedDaysWarning int
}

// Scheduler runs the daily reminder jobs
type Scheduler struct {
	cfg      Config
	load     LoadFunc
	notifier Notifier
	now      func() time.Time
	sched    gocron.Scheduler
}

// NewScheduler registers the morning and evening jobs; call Start to run them
func NewScheduler(cfg Config, load LoadFunc, notifier Notifier) (*Scheduler, error) {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	morning, err := entry.ParseClock(cfg.Morning)
	if err != nil {
		return nil, fmt.Errorf("invalid morning reminder time: %w", err)
	}
	evening, err := entry.ParseClock(cfg.Evening)
	if err != nil {
		return nil, fmt.Errorf("invalid evening reminder time: %w", err)
	}

	sched, err := gocron.NewScheduler(gocron.WithLocation(cfg.Location))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	s := &Scheduler{cfg: cfg, load: load, notifier: notifier, now: time.Now, sched: sched}

	jobs := []struct {
		name string
		at   entry.ClockTime
		run  func(ctx context.Context) error
	}{
		{JobMorning, morning, s.morning},
		{JobEvening, evening, s.Evening},
	}
	for _, j := range jobs {
		run := j.run
		name := j.name
		_, err := sched.NewJob(
			gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(j.at.Hour), uint(j.at.Minute), 0))),
			gocron.NewTask(func() {
				if err := run(context.Background()); err != nil {
					logger.Error("reminder job failed", "job", name, "error", err)
				}
			}),
			gocron.WithName(name),
		)
		if err != nil {
			_ = sched.Shutdown()
			return nil, fmt.Errorf("failed to schedule %s: %w", name, err)
		}
	}
	return s, nil
}

// Start begins running jobs in the background
func (s *Scheduler) Start() {
	s.sched.Start()
	logger.Info("reminders started", "morning", s.cfg.Morning, "evening", s.cfg.Evening, "location", s.cfg.Location.String())
}

// Shutdown stops the jobs and waits for running ones to finish
func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}

// Run starts the scheduler and blocks until ctx is done
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start()
	<-ctx.Done()
	logger.Info("reminders stopping")
	return s.Shutdown()
}

// NextRuns returns the next run time of each job by name
func (s *Scheduler) NextRuns() map[string]time.Time {
	out := make(map[string]time.Time)
	for _, j := range s.sched.Jobs() {
		next, err := j.NextRun()
		if err != nil {
			continue
		}
		out[j.Name()] = next
	}
	return out
}

func (s *Scheduler) today() time.Time {
	return timeutil.Today(s.now(), s.cfg.Location)
}

func (s *Scheduler) morning(ctx context.Context) error {
	if err := s.Morning(ctx); err != nil {
		return err
	}
	return s.CheckMissedDays(ctx)
}

// Morning sends the sleep check-in with the quote of the day
func (s *Scheduler) Morning(ctx context.Context) error {
	text := "Good morning! Log last night's bed and wake time.\n" + coach.DailyMotivation(s.today())
	return s.send(ctx, Message{Kind: KindMorning, Text: text})
}

// Evening sends the day check-in unless today's entry is already complete
func (s *Scheduler) Evening(ctx context.Context) error {
	log, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}
	if e, ok := log.Get(s.today()); ok && e.Completed() {
		logger.Debug("evening reminder skipped, entry complete", "date", e.Date)
		return nil
	}
	return s.send(ctx, Message{Kind: KindEvening, Text: "Evening check-in: log today's mood, energy and activities."})
}

// CheckMissedDays warns when the latest entry is at least MissedDaysWarning days old
func (s *Scheduler) CheckMissedDays(ctx context.Context) error {
	log, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}
	days, ok := stats.DaysSinceLastEntry(log, s.today())
	if !ok || s.cfg.MissedDaysWarning < 1 || days < s.cfg.MissedDaysWarning {
		return nil
	}
	text := fmt.Sprintf("You have not logged anything for %d days. Your streak is waiting!", days)
	return s.send(ctx, Message{Kind: KindMissedDays, Text: text})
}

func (s *Scheduler) send(ctx context.Context, msg Message) error {
	logger.Info("sending reminder", "kind", string(msg.Kind))
	return s.notifier.Notify(ctx, msg)
}
