package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xolan/lifetuner/internal/entry"
)

func tempStoragePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), EntriesFile)
}

func sampleEntry(date string, mood, energy int) entry.Entry {
	ts := time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)
	return entry.Entry{
		Date:       date,
		BedTime:    entry.MustClock("23:00"),
		WakeTime:   entry.MustClock("07:00"),
		Mood:       entry.IntPtr(mood),
		Energy:     entry.IntPtr(energy),
		Activities: []string{"exercise", "reading"},
		Timestamp:  &ts,
		Note:       "felt fine",
	}
}
