package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/goal"
)

func TestReadEntriesWithWarnings_MissingFile(t *testing.T) {
	result, err := ReadEntriesWithWarnings(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Log) != 0 || len(result.Warnings) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestReadEntriesWithWarnings_CorruptedLines(t *testing.T) {
	path := tempStoragePath(t)
	content := strings.Join([]string{
		`{"date":"2024-01-01","mood":3}`,
		`not json`,
		``,
		`{"date":"yesterday","mood":2}`,
		`{"date":"2024-01-02","energy":7}`,
		`{"date":"2024-01-01","mood":5}`,
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := ReadEntriesWithWarnings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Log) != 2 {
		t.Errorf("len(Log) = %d, expected 2", len(result.Log))
	}
	if got := *result.Log["2024-01-01"].Mood; got != 5 {
		t.Errorf("later line should win: mood = %d, expected 5", got)
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("len(Warnings) = %d, expected 2", len(result.Warnings))
	}
	if result.Warnings[0].LineNumber != 2 || result.Warnings[1].LineNumber != 4 {
		t.Errorf("warning lines = %d, %d, expected 2, 4", result.Warnings[0].LineNumber, result.Warnings[1].LineNumber)
	}
	if result.Parsed != 3 || result.Lines != 6 {
		t.Errorf("Parsed/Lines = %d/%d, expected 3/6", result.Parsed, result.Lines)
	}
}

func TestJSONLStore_PutLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewJSONLStore(tempStoragePath(t))
	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	want := sampleEntry("2024-01-01", 4, 8)
	if err := s.Put(ctx, want); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	replaced := sampleEntry("2024-01-01", 2, 3)
	if err := s.Put(ctx, replaced); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	log, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	got, ok := log["2024-01-01"]
	if !ok {
		t.Fatal("entry not found after Put")
	}
	if *got.Mood != 2 || *got.Energy != 3 {
		t.Errorf("entry = mood %d energy %d, expected replacement 2/3", *got.Mood, *got.Energy)
	}
	if got.BedTime.String() != "23:00" || got.Timestamp == nil || got.Note != "felt fine" {
		t.Errorf("fields lost in round trip: %+v", got)
	}
}

func TestJSONLStore_DeleteCreatesBackup(t *testing.T) {
	ctx := context.Background()
	path := tempStoragePath(t)
	s := NewJSONLStore(path)
	_ = s.Init(ctx)
	_ = s.Put(ctx, sampleEntry("2024-01-01", 4, 8))
	_ = s.Put(ctx, sampleEntry("2024-01-02", 3, 6))

	if err := s.Delete(ctx, "2024-01-01"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	log, _ := s.Load(ctx)
	if _, ok := log["2024-01-01"]; ok {
		t.Error("entry still present after Delete")
	}
	if len(log) != 1 {
		t.Errorf("len(log) = %d, expected 1", len(log))
	}
	if _, err := os.Stat(GetBackupPath(path, 1)); err != nil {
		t.Errorf("expected backup after Delete: %v", err)
	}

	if err := s.Delete(ctx, "2030-01-01"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) error = %v, expected ErrNotFound", err)
	}
}

func TestJSONLStore_SaveRewritesSorted(t *testing.T) {
	ctx := context.Background()
	path := tempStoragePath(t)
	s := NewJSONLStore(path)
	_ = s.Init(ctx)

	log := entry.Log{}
	log.Put(sampleEntry("2024-01-03", 3, 5))
	log.Put(sampleEntry("2024-01-01", 3, 5))
	if err := s.Save(ctx, log); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "2024-01-01") {
		t.Errorf("unexpected file content:\n%s", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestJSONLStore_Goals(t *testing.T) {
	ctx := context.Background()
	s := NewJSONLStore(tempStoragePath(t))
	_ = s.Init(ctx)

	g, err := s.LoadGoals(ctx)
	if err != nil {
		t.Fatalf("LoadGoals() failed: %v", err)
	}
	if g != goal.Defaults() {
		t.Errorf("LoadGoals() without file = %+v, expected defaults", g)
	}

	if err := s.SaveGoals(ctx, goal.Goals{SleepHours: 7.5, MinEnergy: 6}); err != nil {
		t.Fatalf("SaveGoals() failed: %v", err)
	}
	g, _ = s.LoadGoals(ctx)
	want := goal.Goals{SleepHours: 7.5, MinEnergy: 6, ExerciseFrequency: 3, MoodTarget: 4}
	if g != want {
		t.Errorf("LoadGoals() = %+v, expected %+v", g, want)
	}
}

func TestJSONLStore_CorruptedGoalsFallBack(t *testing.T) {
	ctx := context.Background()
	path := tempStoragePath(t)
	s := NewJSONLStore(path)
	_ = s.Init(ctx)
	if err := os.WriteFile(filepath.Join(filepath.Dir(path), GoalsFile), []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := s.LoadGoals(ctx)
	if err != nil {
		t.Fatalf("LoadGoals() failed: %v", err)
	}
	if g != goal.Defaults() {
		t.Errorf("LoadGoals() = %+v, expected defaults", g)
	}
}

func TestJSONLStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := NewJSONLStore(tempStoragePath(t))
	_ = s.Init(ctx)
	_ = s.Put(ctx, sampleEntry("2024-01-01", 4, 8))
	_ = s.SaveGoals(ctx, goal.Goals{SleepHours: 9, MinEnergy: 5, ExerciseFrequency: 2, MoodTarget: 3})

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	log, _ := s.Load(ctx)
	if len(log) != 0 {
		t.Errorf("len(log) = %d after Clear", len(log))
	}
	g, _ := s.LoadGoals(ctx)
	if g != goal.Defaults() {
		t.Errorf("goals not reset: %+v", g)
	}
}

func TestJSONLStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewJSONLStore(tempStoragePath(t))

	if _, err := s.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, expected context.Canceled", err)
	}
	if err := s.Put(ctx, sampleEntry("2024-01-01", 3, 3)); !errors.Is(err, context.Canceled) {
		t.Errorf("Put() error = %v, expected context.Canceled", err)
	}
}

func TestValidateStorage(t *testing.T) {
	path := tempStoragePath(t)
	content := `{"date":"2024-01-01","mood":3}` + "\n" + `garbage` + "\n" + `{"date":"2024-01-01","mood":4}` + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	health, err := ValidateStorage(path)
	if err != nil {
		t.Fatalf("ValidateStorage() failed: %v", err)
	}
	if health.TotalLines != 3 || health.ValidEntries != 2 || health.CorruptedEntries != 1 || health.UniqueDates != 1 {
		t.Errorf("health = %+v", health)
	}
}

func TestValidateStorage_MissingFile(t *testing.T) {
	health, err := ValidateStorage(tempStoragePath(t))
	if err != nil {
		t.Fatalf("ValidateStorage() failed: %v", err)
	}
	if health.TotalLines != 0 || health.CorruptedEntries != 0 {
		t.Errorf("health = %+v, expected empty", health)
	}
}
