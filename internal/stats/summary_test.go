package stats

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/goal"
	"github.com/xolan/lifetuner/internal/timeutil"
)

func TestSummarize_Scenario(t *testing.T) {
	s := Summarize(scenarioLog(), goal.Defaults(), makeDay(2024, time.January, 2), DefaultOptions())

	if s.Date != "2024-01-02" || s.WindowDays != 7 || s.EntriesInWindow != 2 {
		t.Errorf("header = %s/%d/%d", s.Date, s.WindowDays, s.EntriesInWindow)
	}
	if s.Today == nil || *s.Today.Mood != 3 {
		t.Errorf("Today = %+v, expected the 2024-01-02 entry", s.Today)
	}
	if s.Streak != (Streak{Current: 2, Longest: 2}) {
		t.Errorf("Streak = %+v", s.Streak)
	}
	assertFloat(t, "energy", s.Energy.Value, 7)
	assertFloat(t, "mood", s.Mood.Value, 3.5)
	if s.Sleep.String() != "7h 30m" {
		t.Errorf("Sleep = %s", s.Sleep)
	}
	if s.MostCommonMood != 4 {
		t.Errorf("MostCommonMood = %d, expected 4", s.MostCommonMood)
	}
	if len(s.Alerts) != 1 || s.Alerts[0].Goal != GoalSleep || s.Alerts[0].Level != AlertClose {
		t.Errorf("Alerts = %+v, expected sleep close", s.Alerts)
	}
	if len(s.Insights) == 0 {
		t.Error("expected at least one insight")
	}
}

func TestSummarize_EmptyLog(t *testing.T) {
	s := Summarize(entry.Log{}, goal.Goals{}, makeDay(2024, time.January, 2), Options{})

	if s.WindowDays != DefaultWindowDays {
		t.Errorf("WindowDays = %d, expected default", s.WindowDays)
	}
	if s.Today != nil || s.Streak != (Streak{}) {
		t.Errorf("unexpected data in empty summary: %+v", s)
	}
	if s.Mood.Valid() || s.Energy.Valid() || s.Sleep.Valid() {
		t.Error("expected all averages to be N/A")
	}
	if s.Progress != (Progress{}) {
		t.Errorf("Progress = %+v, expected zero", s.Progress)
	}
	if s.Goals != goal.Defaults() {
		t.Errorf("Goals = %+v, expected defaults", s.Goals)
	}
	if len(s.Insights) != 1 || s.Insights[0].ID != InsightKeepGoing {
		t.Errorf("Insights = %+v, expected fallback only", s.Insights)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	log := scenarioLog()
	today := makeDay(2024, time.January, 2)
	first := Summarize(log, goal.Defaults(), today, DefaultOptions())
	second := Summarize(log, goal.Defaults(), today, DefaultOptions())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Summarize not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestSummarize_IdempotentRandomLogs(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	start := makeDay(2024, time.January, 1)

	for i := 0; i < 200; i++ {
		log := randomLog(r, start, 40)
		before := log.Clone()
		goals := goal.Goals{
			SleepHours:        6 + float64(r.Intn(5)),
			MinEnergy:         1 + r.Intn(10),
			ExerciseFrequency: 1 + r.Intn(7),
			MoodTarget:        1 + r.Intn(5),
		}
		today := timeutil.AddDays(start, r.Intn(45))
		opts := randomOptions(r)

		first := Summarize(log, goals, today, opts)
		second := Summarize(log, goals, today, opts)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("iteration %d: Summarize not idempotent:\n%+v\n%+v", i, first, second)
		}
		if !reflect.DeepEqual(log, before) {
			t.Fatalf("iteration %d: Summarize modified its input log", i)
		}
	}
}
