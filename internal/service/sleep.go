package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/logger"
	"github.com/xolan/lifetuner/internal/timer"
	"github.com/xolan/lifetuner/internal/timeutil"
)

// Sleep timer errors
var (
	ErrSleepAlreadyRunning = errors.New("sleep timer is already running")
	ErrNoSleepRunning      = errors.New("no sleep timer is running")
	ErrSleepTooLong        = errors.New("sleep timer ran for 24 hours or more")
)

var clearSessionState = timer.ClearSessionState

// SleepService records bed and wake times with a running timer.
// Start at bedtime, Stop on waking logs both times for today.
type SleepService struct {
	base
	path  string
	entry *EntryService
}

// SleepStatus describes the sleep timer
type SleepStatus struct {
	Running bool
	State   *timer.SessionState
	Elapsed time.Duration
}

// Path returns the sleep timer state file
func (s *SleepService) Path() string {
	return s.path
}

// Start begins a sleep timer now.
// With force an existing timer is replaced; it is returned either way.
func (s *SleepService) Start(note string, force bool) (*timer.SessionState, *timer.SessionState, error) {
	existing, err := timer.LoadSessionState(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load sleep timer: %w", err)
	}
	if existing != nil && !force {
		return nil, existing, ErrSleepAlreadyRunning
	}

	state := timer.SessionState{
		StartedAt: s.now(),
		Note:      strings.TrimSpace(note),
	}
	if err := timer.SaveSessionState(s.path, state); err != nil {
		return nil, nil, fmt.Errorf("failed to save sleep timer: %w", err)
	}
	logger.Debug("sleep timer started", "at", state.StartedAt)
	return &state, existing, nil
}

// Stop ends the timer and logs its bed and wake times on today's entry
func (s *SleepService) Stop(ctx context.Context) (*entry.Entry, *timer.SessionState, error) {
	state, err := timer.LoadSessionState(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load sleep timer: %w", err)
	}
	if state == nil {
		return nil, nil, ErrNoSleepRunning
	}

	now := s.now()
	if now.Sub(state.StartedAt) >= 24*time.Hour {
		return nil, state, ErrSleepTooLong
	}

	loc := s.location()
	e, err := s.entry.Log(ctx, EntryInput{
		Date:     timeutil.DateKey(s.today()),
		BedTime:  state.StartedAt.In(loc).Format("15:04"),
		WakeTime: now.In(loc).Format("15:04"),
		Note:     state.Note,
	})
	if err != nil {
		return nil, state, err
	}

	// the entry is saved either way; a stale timer needs start --force
	if err := clearSessionState(s.path); err != nil {
		logger.Warn("failed to clear sleep timer", "path", s.path, "error", err)
	}
	return e, state, nil
}

// Cancel discards the running timer without logging anything
func (s *SleepService) Cancel() (*timer.SessionState, error) {
	state, err := timer.LoadSessionState(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load sleep timer: %w", err)
	}
	if state == nil {
		return nil, ErrNoSleepRunning
	}
	if err := clearSessionState(s.path); err != nil {
		return nil, fmt.Errorf("failed to clear sleep timer: %w", err)
	}
	return state, nil
}

// Status returns the current sleep timer state
func (s *SleepService) Status() (*SleepStatus, error) {
	state, err := timer.LoadSessionState(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load sleep timer: %w", err)
	}
	status := &SleepStatus{Running: state != nil, State: state}
	if state != nil {
		status.Elapsed = s.now().Sub(state.StartedAt)
	}
	return status, nil
}
