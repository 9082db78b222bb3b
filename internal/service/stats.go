package service

import (
	"context"
	"fmt"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/goal"
	"github.com/xolan/lifetuner/internal/stats"
	"github.com/xolan/lifetuner/internal/timeutil"
)

// StatsService runs the aggregation engine over a fresh snapshot of the log
type StatsService struct {
	base
}

// options returns the configured engine options, with window overriding
// the configured window when positive
func (s *StatsService) options(window int) stats.Options {
	opts := s.config.StatsOptions()
	if window > 0 {
		opts.WindowDays = window
	}
	return opts
}

func (s *StatsService) snapshot(ctx context.Context) (entry.Log, goal.Goals, error) {
	log, err := s.load(ctx)
	if err != nil {
		return nil, goal.Goals{}, fmt.Errorf("failed to read entries: %w", err)
	}
	g, err := s.store.LoadGoals(ctx)
	if err != nil {
		return nil, goal.Goals{}, fmt.Errorf("failed to read goals: %w", err)
	}
	return log, g.WithDefaults(), nil
}

// Summary returns the dashboard bundle for today
func (s *StatsService) Summary(ctx context.Context, window int) (*stats.Summary, error) {
	log, goals, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	summary := stats.Summarize(log, goals, s.today(), s.options(window))
	return &summary, nil
}

// Patterns returns streaks, averages and pattern analysis
func (s *StatsService) Patterns(ctx context.Context, window int) (*PatternsResult, error) {
	log, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	opts := s.options(window)
	w := opts.WindowDays
	today := s.today()

	r := &PatternsResult{
		Date:         timeutil.DateKey(today),
		WindowDays:   w,
		Streak:       stats.ComputeStreak(log, today),
		Mood:         stats.WindowedAverage(log, today, w, stats.FieldMood),
		Energy:       stats.WindowedAverage(log, today, w, stats.FieldEnergy),
		Sleep:        stats.AverageSleep(log, today, w, opts.Rollover),
		SleepQuality: stats.SleepQuality(log, today, w, opts.Rollover),
		Focus:        stats.FocusPattern(log, today, w),
		Activities:   stats.ActivityBreakdown(log, today, w),
	}
	r.MostCommonMood, _ = stats.MostCommonMood(log, today, w)
	r.BestMood, _ = stats.BestMood(log, today, w)
	r.MostEnergeticHour, r.HasEnergeticHour = stats.MostEnergeticHour(log)
	r.DaysSinceLast, r.HasEntries = stats.DaysSinceLastEntry(log, today)
	return r, nil
}

// Insights returns the rule-based insights for the window
func (s *StatsService) Insights(ctx context.Context, window int) ([]stats.Insight, error) {
	log, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	opts := s.options(window)
	return stats.GenerateInsights(log, s.today(), opts.WindowDays, opts.Rollover), nil
}

// Progress returns goal progress with alerts
func (s *StatsService) Progress(ctx context.Context, window int) (*ProgressResult, error) {
	log, goals, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	opts := s.options(window)
	raw := stats.GoalProgress(log, s.today(), goals, opts)
	capped := raw.Capped()
	return &ProgressResult{
		Goals:      goals,
		WindowDays: opts.WindowDays,
		Raw:        raw,
		Capped:     capped,
		Alerts:     stats.GoalAlerts(capped),
	}, nil
}
