package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/logger"
	"github.com/xolan/lifetuner/internal/storage"
	"github.com/xolan/lifetuner/internal/timeutil"
)

// Common errors for the entry service
var (
	ErrNoChangesSpecified = errors.New("at least one field must be specified")
	ErrFutureDate         = errors.New("cannot log entries for future dates")
)

// EntryService provides operations on day entries
type EntryService struct {
	base
}

// ResolveDate parses input as a log date, with empty meaning today
func (s *EntryService) ResolveDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "", "today":
		return s.today(), nil
	case "yesterday", "y":
		return timeutil.AddDays(s.today(), -1), nil
	}
	return timeutil.ParseDate(input, s.location())
}

// Log merges in into the entry for its date and saves it
func (s *EntryService) Log(ctx context.Context, in EntryInput) (*entry.Entry, error) {
	day, err := s.ResolveDate(in.Date)
	if err != nil {
		return nil, err
	}
	if timeutil.DaysBetween(s.today(), day) > 0 {
		return nil, ErrFutureDate
	}
	if in.isEmpty() {
		return nil, ErrNoChangesSpecified
	}

	log, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	key := timeutil.DateKey(day)
	e := entry.Entry{Date: key}
	if existing, ok := log[key]; ok && !in.Replace {
		e = existing
	}
	if err := in.apply(&e); err != nil {
		return nil, err
	}
	now := s.now()
	e.Timestamp = &now

	if err := entry.Validate(e, s.config.StatsOptions().Rollover); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}
	logger.Info("entry logged", "date", e.Date, "completed", e.Completed())
	return &e, nil
}

func (in EntryInput) isEmpty() bool {
	return in.BedTime == "" && in.WakeTime == "" && in.Mood == nil && in.Energy == nil &&
		strings.TrimSpace(in.Activities) == "" && in.Note == ""
}

func (in EntryInput) apply(e *entry.Entry) error {
	if in.BedTime != "" {
		c, err := entry.ParseClock(strings.TrimSpace(in.BedTime))
		if err != nil {
			return fmt.Errorf("bed time: %w", err)
		}
		e.BedTime = &c
	}
	if in.WakeTime != "" {
		c, err := entry.ParseClock(strings.TrimSpace(in.WakeTime))
		if err != nil {
			return fmt.Errorf("wake time: %w", err)
		}
		e.WakeTime = &c
	}
	if in.Mood != nil {
		e.Mood = entry.IntPtr(*in.Mood)
	}
	if in.Energy != nil {
		e.Energy = entry.IntPtr(*in.Energy)
	}
	if strings.TrimSpace(in.Activities) != "" {
		activities, err := entry.ParseActivities(in.Activities)
		if err != nil {
			return err
		}
		e.Activities = activities
	}
	if in.Note != "" {
		e.Note = strings.TrimSpace(in.Note)
	}
	return nil
}

// Get returns the entry for date
func (s *EntryService) Get(ctx context.Context, date string) (entry.Entry, error) {
	day, err := s.ResolveDate(date)
	if err != nil {
		return entry.Entry{}, err
	}
	log, err := s.load(ctx)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("failed to read entries: %w", err)
	}
	e, ok := log.Get(day)
	if !ok {
		return entry.Entry{}, fmt.Errorf("%s: %w", timeutil.DateKey(day), storage.ErrNotFound)
	}
	return e, nil
}

// Today returns today's entry, if any
func (s *EntryService) Today(ctx context.Context) (*entry.Entry, error) {
	e, err := s.Get(ctx, "")
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns entries dated within [start, end], ascending.
// A zero start means no lower bound.
func (s *EntryService) List(ctx context.Context, start, end time.Time) (*ListResult, error) {
	log, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	loc := s.location()
	result := &ListResult{Start: start, End: end}
	for _, key := range log.Dates() {
		day, err := time.ParseInLocation(entry.DateLayout, key, loc)
		if err != nil {
			continue
		}
		if !start.IsZero() && day.Before(timeutil.StartOfDay(start)) {
			continue
		}
		if !end.IsZero() && day.After(end) {
			continue
		}
		result.Entries = append(result.Entries, log[key])
	}
	return result, nil
}

// ListRange resolves --from/--to/--last style flags and lists the entries
func (s *EntryService) ListRange(ctx context.Context, from, to string, lastDays int) (*ListResult, error) {
	start, end, err := timeutil.ParseDateRangeFlags(from, to, lastDays, s.now().In(s.location()))
	if err != nil {
		return nil, err
	}
	return s.List(ctx, start, end)
}

// Delete removes the entry for date
func (s *EntryService) Delete(ctx context.Context, date string) (string, error) {
	day, err := s.ResolveDate(date)
	if err != nil {
		return "", err
	}
	key := timeutil.DateKey(day)
	if err := s.store.Delete(ctx, key); err != nil {
		return key, err
	}
	logger.Info("entry deleted", "date", key)
	return key, nil
}
