package service

import (
	"context"
	"fmt"

	"github.com/xolan/lifetuner/internal/coach"
)

// CoachService builds recommendations from the habit log
type CoachService struct {
	base
}

// Recommend parses feeling and returns personalised recommendations
func (s *CoachService) Recommend(ctx context.Context, feeling string) (*coach.Recommendations, error) {
	f, err := coach.ParseFeeling(feeling)
	if err != nil {
		return nil, err
	}
	log, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	now := s.now().In(s.location())
	recs := coach.Recommend(f, log, s.today(), now)
	return &recs, nil
}

// Motivation returns the quote of the day
func (s *CoachService) Motivation() string {
	return coach.DailyMotivation(s.today())
}

// DailyInsight returns a one-line reading of the last week
func (s *CoachService) DailyInsight(ctx context.Context) (string, error) {
	log, err := s.load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read entries: %w", err)
	}
	return coach.DailyInsight(log, s.today()), nil
}
