package stats

import (
	"testing"
	"time"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/goal"
)

func TestGoalProgress_Scenario(t *testing.T) {
	p := GoalProgress(scenarioLog(), makeDay(2024, time.January, 2), goal.Defaults(), DefaultOptions())

	assertFloat(t, "sleep", p.Sleep, 93.75)
	assertFloat(t, "energy", p.Energy, 50)
	assertFloat(t, "exercise", p.Exercise, 33.33)
	assertFloat(t, "mood", p.Mood, 50)
}

func TestGoalProgress_EnergyAverageMode(t *testing.T) {
	opts := DefaultOptions()
	opts.EnergyMode = EnergyAverage
	p := GoalProgress(scenarioLog(), makeDay(2024, time.January, 2), goal.Defaults(), opts)
	assertFloat(t, "energy", p.Energy, 100)
}

func TestGoalProgress_EmptyLogIsZero(t *testing.T) {
	p := GoalProgress(entry.Log{}, makeDay(2024, time.January, 2), goal.Defaults(), DefaultOptions())
	if p != (Progress{}) {
		t.Errorf("GoalProgress(empty) = %+v, expected all zero", p)
	}
}

func TestGoalProgress_RawExceedsHundred(t *testing.T) {
	log := makeLog(
		makeEntry("2024-01-01", 5, 9, "22:00", "08:00", "exercise"),
		makeEntry("2024-01-02", 5, 9, "22:00", "08:00", "exercise"),
		makeEntry("2024-01-03", 5, 9, "22:00", "08:00", "exercise"),
		makeEntry("2024-01-04", 5, 9, "22:00", "08:00", "exercise"),
		makeEntry("2024-01-05", 5, 9, "22:00", "08:00", "exercise"),
		makeEntry("2024-01-06", 5, 9, "22:00", "08:00", "exercise"),
	)
	p := GoalProgress(log, makeDay(2024, time.January, 6), goal.Defaults(), DefaultOptions())

	assertFloat(t, "raw exercise", p.Exercise, 200)
	assertFloat(t, "raw sleep", p.Sleep, 125)

	c := p.Capped()
	assertFloat(t, "capped exercise", c.Exercise, 100)
	assertFloat(t, "capped sleep", c.Sleep, 100)
	assertFloat(t, "capped mood", c.Mood, 100)
}

func TestGoalProgress_ExerciseTargetScalesWithWindow(t *testing.T) {
	log := makeLog(
		entry.Entry{Date: "2024-01-10", Activities: []string{"exercise"}},
		entry.Entry{Date: "2024-01-20", Activities: []string{"exercise"}},
		entry.Entry{Date: "2024-01-28", Activities: []string{"exercise"}},
	)
	opts := DefaultOptions()
	opts.WindowDays = 28

	// 3 sessions against 3/week over 4 weeks
	p := GoalProgress(log, makeDay(2024, time.January, 28), goal.Defaults(), opts)
	assertFloat(t, "exercise", p.Exercise, 25)
}

func TestGoalProgress_ZeroGoalsUseDefaults(t *testing.T) {
	p := GoalProgress(scenarioLog(), makeDay(2024, time.January, 2), goal.Goals{}, DefaultOptions())
	assertFloat(t, "sleep", p.Sleep, 93.75)
}

func TestParseEnergyMode(t *testing.T) {
	if m, err := ParseEnergyMode("average"); err != nil || m != EnergyAverage {
		t.Errorf("ParseEnergyMode(average) = %v, %v", m, err)
	}
	if m, err := ParseEnergyMode(""); err != nil || m != EnergyThreshold {
		t.Errorf("ParseEnergyMode(\"\") = %v, %v", m, err)
	}
	if _, err := ParseEnergyMode("median"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestGoalAlerts(t *testing.T) {
	alerts := GoalAlerts(Progress{Sleep: 100, Energy: 85, Exercise: 50, Mood: 79.9})
	if len(alerts) != 2 {
		t.Fatalf("len(alerts) = %d, expected 2: %+v", len(alerts), alerts)
	}
	if alerts[0].Goal != GoalSleep || alerts[0].Level != AlertAchieved {
		t.Errorf("alerts[0] = %+v, expected sleep achieved", alerts[0])
	}
	if alerts[1].Goal != GoalEnergy || alerts[1].Level != AlertClose {
		t.Errorf("alerts[1] = %+v, expected energy close", alerts[1])
	}
	if msg := alerts[1].Message(); msg != "energy goal almost there (85%)" {
		t.Errorf("Message() = %q", msg)
	}
}

func TestGoalAlerts_None(t *testing.T) {
	if alerts := GoalAlerts(Progress{}); len(alerts) != 0 {
		t.Errorf("GoalAlerts(zero) = %+v, expected none", alerts)
	}
}
