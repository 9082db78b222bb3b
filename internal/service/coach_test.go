package service

import (
	"context"
	"testing"

	"github.com/xolan/lifetuner/internal/coach"
)

func TestCoachService_Recommend(t *testing.T) {
	s := scenarioServices(t)

	recs, err := s.Coach.Recommend(context.Background(), "Tired")
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if recs.Feeling != coach.FeelingTired {
		t.Errorf("Feeling = %q, want tired", recs.Feeling)
	}
	if len(recs.Primary) != coach.MaxPrimary {
		t.Errorf("len(Primary) = %d, want %d", len(recs.Primary), coach.MaxPrimary)
	}
	// one exercise day in the last week
	if recs.Primary[0].Title != "Add physical activity" {
		t.Errorf("Primary[0] = %q, want the activity suggestion", recs.Primary[0].Title)
	}
	if recs.TimeOfDay != coach.Morning {
		t.Errorf("TimeOfDay = %q, want morning at 09:30", recs.TimeOfDay)
	}
}

func TestCoachService_RecommendUnknownFeeling(t *testing.T) {
	s := newTestServices(t)
	if _, err := s.Coach.Recommend(context.Background(), "bored"); err == nil {
		t.Error("Recommend() expected error for unknown feeling")
	}
}

func TestCoachService_MotivationAndInsight(t *testing.T) {
	s := newTestServices(t)

	if got, want := s.Coach.Motivation(), coach.DailyMotivation(fixedNow); got != want {
		t.Errorf("Motivation() = %q, want %q", got, want)
	}

	insight, err := s.Coach.DailyInsight(context.Background())
	if err != nil {
		t.Fatalf("DailyInsight() error: %v", err)
	}
	if insight == "" {
		t.Error("DailyInsight() should not be empty")
	}
}
