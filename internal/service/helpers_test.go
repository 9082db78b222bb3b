package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/xolan/lifetuner/internal/config"
	"github.com/xolan/lifetuner/internal/storage"
)

// fixedNow is 2024-01-10 09:30 UTC
var fixedNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	return cfg
}

// newTestServices opens a JSONL store in a temp dir with a fixed clock
func newTestServices(t *testing.T) *Services {
	t.Helper()
	tmpDir := t.TempDir()
	store, err := storage.Open(context.Background(), storage.Options{
		Backend: storage.BackendJSONL,
		Path:    filepath.Join(tmpDir, storage.EntriesFile),
	})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	svcs := NewServicesWithStore(store, filepath.Join(tmpDir, config.ConfigFile), testConfig(), func() time.Time { return fixedNow })
	t.Cleanup(func() { _ = svcs.Close() })
	return svcs
}

func intPtr(v int) *int { return &v }

// logDay logs a completed entry for date
func logDay(t *testing.T, s *Services, date string, mood, energy int, bed, wake, activities string) {
	t.Helper()
	_, err := s.Entry.Log(context.Background(), EntryInput{
		Date:       date,
		BedTime:    bed,
		WakeTime:   wake,
		Mood:       intPtr(mood),
		Energy:     intPtr(energy),
		Activities: activities,
	})
	if err != nil {
		t.Fatalf("failed to log %s: %v", date, err)
	}
}
