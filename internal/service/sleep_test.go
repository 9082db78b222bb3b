package service

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/xolan/lifetuner/internal/config"
	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/logger"
	"github.com/xolan/lifetuner/internal/storage"
	"github.com/xolan/lifetuner/internal/timer"
)

// newSleepServices returns services whose clock the test can move
func newSleepServices(t *testing.T, start time.Time) (*Services, *time.Time) {
	t.Helper()
	tmpDir := t.TempDir()
	store, err := storage.Open(context.Background(), storage.Options{
		Backend: storage.BackendJSONL,
		Path:    filepath.Join(tmpDir, storage.EntriesFile),
	})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	now := start
	svcs := NewServicesWithStore(store, filepath.Join(tmpDir, config.ConfigFile), testConfig(), func() time.Time { return now })
	t.Cleanup(func() { _ = svcs.Close() })
	return svcs, &now
}

func TestSleepService_StartStop(t *testing.T) {
	svcs, now := newSleepServices(t, time.Date(2024, 1, 9, 23, 15, 0, 0, time.UTC))

	state, existing, err := svcs.Sleep.Start("  late coffee ", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if existing != nil {
		t.Error("expected no existing timer")
	}
	if state.Note != "late coffee" {
		t.Errorf("expected trimmed note, got %q", state.Note)
	}

	*now = time.Date(2024, 1, 10, 7, 5, 0, 0, time.UTC)
	status, err := svcs.Sleep.Status()
	if err != nil {
		t.Fatal(err)
	}
	if !status.Running || status.Elapsed != 7*time.Hour+50*time.Minute {
		t.Errorf("unexpected status: %+v", status)
	}

	e, stopped, err := svcs.Sleep.Stop(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stopped.StartedAt.Equal(state.StartedAt) {
		t.Errorf("expected stopped state to match started state")
	}
	if e.Date != "2024-01-10" {
		t.Errorf("expected entry for the wake date, got %s", e.Date)
	}
	if e.BedTime == nil || e.BedTime.String() != "23:15" || e.WakeTime == nil || e.WakeTime.String() != "07:05" {
		t.Errorf("unexpected sleep times: bed=%v wake=%v", e.BedTime, e.WakeTime)
	}
	if d, ok := e.Sleep(entry.RolloverStrict); !ok || d != 7*time.Hour+50*time.Minute {
		t.Errorf("expected 7h50m of sleep, got %v", d)
	}
	if e.Note != "late coffee" {
		t.Errorf("expected note on entry, got %q", e.Note)
	}

	running, err := timer.IsRunning(svcs.Sleep.Path())
	if err != nil || running {
		t.Errorf("expected the timer to be cleared, running=%v err=%v", running, err)
	}
}

func TestSleepService_StopMergesIntoExistingEntry(t *testing.T) {
	svcs, now := newSleepServices(t, time.Date(2024, 1, 10, 0, 30, 0, 0, time.UTC))
	if _, err := svcs.Entry.Log(context.Background(), EntryInput{Date: "2024-01-10", Mood: intPtr(4)}); err != nil {
		t.Fatal(err)
	}

	if _, _, err := svcs.Sleep.Start("", false); err != nil {
		t.Fatal(err)
	}
	*now = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	e, _, err := svcs.Sleep.Stop(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if e.Mood == nil || *e.Mood != 4 {
		t.Errorf("expected mood to be kept, got %v", e.Mood)
	}
	if e.BedTime.String() != "00:30" || e.WakeTime.String() != "08:00" {
		t.Errorf("unexpected sleep times: %s-%s", e.BedTime, e.WakeTime)
	}
}

func TestSleepService_Start_AlreadyRunning(t *testing.T) {
	svcs, now := newSleepServices(t, time.Date(2024, 1, 9, 22, 0, 0, 0, time.UTC))
	first, _, err := svcs.Sleep.Start("", false)
	if err != nil {
		t.Fatal(err)
	}

	_, existing, err := svcs.Sleep.Start("", false)
	if !errors.Is(err, ErrSleepAlreadyRunning) {
		t.Errorf("expected ErrSleepAlreadyRunning, got %v", err)
	}
	if existing == nil || !existing.StartedAt.Equal(first.StartedAt) {
		t.Errorf("expected existing timer, got %+v", existing)
	}

	*now = time.Date(2024, 1, 9, 23, 0, 0, 0, time.UTC)
	state, existing, err := svcs.Sleep.Start("", true)
	if err != nil {
		t.Fatalf("force start failed: %v", err)
	}
	if existing == nil {
		t.Error("expected replaced timer to be returned")
	}
	if !state.StartedAt.Equal(*now) {
		t.Errorf("expected new start time, got %v", state.StartedAt)
	}
}

func TestSleepService_NoTimer(t *testing.T) {
	svcs, _ := newSleepServices(t, fixedNow)

	if _, _, err := svcs.Sleep.Stop(context.Background()); !errors.Is(err, ErrNoSleepRunning) {
		t.Errorf("Stop: expected ErrNoSleepRunning, got %v", err)
	}
	if _, err := svcs.Sleep.Cancel(); !errors.Is(err, ErrNoSleepRunning) {
		t.Errorf("Cancel: expected ErrNoSleepRunning, got %v", err)
	}
	status, err := svcs.Sleep.Status()
	if err != nil {
		t.Fatal(err)
	}
	if status.Running || status.State != nil {
		t.Errorf("expected no running timer, got %+v", status)
	}
}

func TestSleepService_Cancel(t *testing.T) {
	svcs, _ := newSleepServices(t, fixedNow)
	if _, _, err := svcs.Sleep.Start("", false); err != nil {
		t.Fatal(err)
	}

	state, err := svcs.Sleep.Cancel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state == nil {
		t.Fatal("expected cancelled state")
	}

	if _, err := svcs.Entry.Get(context.Background(), ""); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected no entry after cancel, got %v", err)
	}
}

func TestSleepService_TooLong(t *testing.T) {
	svcs, now := newSleepServices(t, time.Date(2024, 1, 8, 22, 0, 0, 0, time.UTC))
	if _, _, err := svcs.Sleep.Start("", false); err != nil {
		t.Fatal(err)
	}

	*now = time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC)
	_, state, err := svcs.Sleep.Stop(context.Background())
	if !errors.Is(err, ErrSleepTooLong) {
		t.Fatalf("expected ErrSleepTooLong, got %v", err)
	}
	if state == nil {
		t.Error("expected the stale state to be returned")
	}
	running, _ := timer.IsRunning(svcs.Sleep.Path())
	if !running {
		t.Error("expected the timer to stay until cancelled")
	}
}

func TestSleepService_StopWarnsWhenClearFails(t *testing.T) {
	var buf bytes.Buffer
	prevLogger, prevClear := logger.Logger, clearSessionState
	logger.Logger = log.New(&buf)
	clearSessionState = func(string) error { return errors.New("read-only filesystem") }
	t.Cleanup(func() { logger.Logger, clearSessionState = prevLogger, prevClear })

	svcs, now := newSleepServices(t, time.Date(2024, 1, 9, 23, 0, 0, 0, time.UTC))
	if _, _, err := svcs.Sleep.Start("", false); err != nil {
		t.Fatal(err)
	}
	*now = time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC)

	e, _, err := svcs.Sleep.Stop(context.Background())
	if err != nil {
		t.Fatalf("expected the entry to be kept, got %v", err)
	}
	if e == nil || e.WakeTime == nil || e.WakeTime.String() != "07:00" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if out := buf.String(); !strings.Contains(out, "failed to clear sleep timer") || !strings.Contains(out, "read-only filesystem") {
		t.Errorf("expected a warning about the stale timer, got %q", out)
	}

	if _, err := svcs.Sleep.Cancel(); err == nil || !strings.Contains(err.Error(), "read-only filesystem") {
		t.Errorf("expected Cancel to report the clear failure, got %v", err)
	}
}
