package service

import (
	"context"
	"fmt"

	"github.com/xolan/lifetuner/internal/goal"
	"github.com/xolan/lifetuner/internal/logger"
)

// GoalService reads and updates the goal set
type GoalService struct {
	base
}

// Get returns the saved goals, with defaults for unset fields
func (s *GoalService) Get(ctx context.Context) (goal.Goals, error) {
	g, err := s.store.LoadGoals(ctx)
	if err != nil {
		return goal.Goals{}, fmt.Errorf("failed to read goals: %w", err)
	}
	return g.WithDefaults(), nil
}

// Set applies u to the saved goals, validates and saves them
func (s *GoalService) Set(ctx context.Context, u GoalUpdate) (goal.Goals, error) {
	if u.SleepHours == nil && u.MinEnergy == nil && u.ExerciseFrequency == nil && u.MoodTarget == nil {
		return goal.Goals{}, ErrNoChangesSpecified
	}

	g, err := s.Get(ctx)
	if err != nil {
		return goal.Goals{}, err
	}
	if u.SleepHours != nil {
		g.SleepHours = *u.SleepHours
	}
	if u.MinEnergy != nil {
		g.MinEnergy = *u.MinEnergy
	}
	if u.ExerciseFrequency != nil {
		g.ExerciseFrequency = *u.ExerciseFrequency
	}
	if u.MoodTarget != nil {
		g.MoodTarget = *u.MoodTarget
	}
	if err := g.Validate(); err != nil {
		return goal.Goals{}, err
	}

	now := s.now()
	g.UpdatedAt = &now
	if err := s.store.SaveGoals(ctx, g); err != nil {
		return goal.Goals{}, fmt.Errorf("failed to save goals: %w", err)
	}
	logger.Info("goals updated", "sleep", g.SleepHours, "energy", g.MinEnergy,
		"exercise", g.ExerciseFrequency, "mood", g.MoodTarget)
	return g, nil
}
