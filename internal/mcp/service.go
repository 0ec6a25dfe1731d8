package mcp

import (
	"context"

	"github.com/2beens/fittrack/internal/program"
	"github.com/2beens/fittrack/internal/reminders"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/tracker"
)

// contextService provides the read-only fittrack data the tools expose.
// Used by Handler for testability.
type contextService interface {
	Settings(ctx context.Context) (*tracker.Settings, error)
	Plan(ctx context.Context, date string) (*tracker.Plan, error)
	WeekPlan(ctx context.Context, date string) ([]tracker.Plan, error)
	Workout(ctx context.Context, date string) (*tracker.Workout, error)
	Streak(ctx context.Context) (stats.Streak, error)
	Adherence(ctx context.Context, days int) (*AdherenceSummary, error)
	Trends(ctx context.Context) (stats.Trends, error)
	Reminders(ctx context.Context) ([]reminders.Banner, error)
	Exercise(ctx context.Context, id string) (*program.ExerciseDetail, error)
	NutritionTarget(ctx context.Context, mode string) (*program.NutritionTarget, error)
}

// AdherenceSummary pairs the rolling window with the current week.
type AdherenceSummary struct {
	Window stats.Adherence       `json:"window"`
	Week   stats.WeeklyAdherence `json:"week"`
}

// ContextService reads through the tracker, stats and reminders services.
type ContextService struct {
	tracker   *tracker.Service
	stats     *stats.Service
	reminders *reminders.Service
}

func NewContextService(tr *tracker.Service, st *stats.Service, rem *reminders.Service) *ContextService {
	return &ContextService{
		tracker:   tr,
		stats:     st,
		reminders: rem,
	}
}

func (s *ContextService) Settings(ctx context.Context) (*tracker.Settings, error) {
	return s.tracker.Settings(ctx)
}

func (s *ContextService) Plan(ctx context.Context, date string) (*tracker.Plan, error) {
	return s.tracker.Plan(ctx, date)
}

func (s *ContextService) WeekPlan(ctx context.Context, date string) ([]tracker.Plan, error) {
	return s.tracker.WeekPlan(ctx, date)
}

func (s *ContextService) Workout(ctx context.Context, date string) (*tracker.Workout, error) {
	if date == "" {
		date = s.tracker.Today()
	}
	return s.tracker.Workout(ctx, date)
}

func (s *ContextService) Streak(ctx context.Context) (stats.Streak, error) {
	return s.stats.Streak(ctx)
}

func (s *ContextService) Adherence(ctx context.Context, days int) (*AdherenceSummary, error) {
	window, err := s.stats.Adherence(ctx, days)
	if err != nil {
		return nil, err
	}
	week, err := s.stats.WeeklyAdherence(ctx)
	if err != nil {
		return nil, err
	}
	return &AdherenceSummary{Window: window, Week: week}, nil
}

func (s *ContextService) Trends(ctx context.Context) (stats.Trends, error) {
	return s.stats.Trends(ctx)
}

func (s *ContextService) Reminders(ctx context.Context) ([]reminders.Banner, error) {
	return s.reminders.Banners(ctx)
}

func (s *ContextService) Exercise(_ context.Context, id string) (*program.ExerciseDetail, error) {
	return s.tracker.Exercise(id)
}

func (s *ContextService) NutritionTarget(ctx context.Context, mode string) (*program.NutritionTarget, error) {
	return s.tracker.NutritionTarget(ctx, mode)
}
