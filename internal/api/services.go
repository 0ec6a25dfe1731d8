package api

import (
	"context"

	"github.com/2beens/fittrack/internal/backup"
	"github.com/2beens/fittrack/internal/program"
	"github.com/2beens/fittrack/internal/reminders"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/tracker"
)

//go:generate mockgen -source=$GOFILE -destination=services_mocks_test.go -package=api_test

type trackerService interface {
	Plan(ctx context.Context, date string) (*tracker.Plan, error)
	WeekPlan(ctx context.Context, date string) ([]tracker.Plan, error)
	Programs() []*program.Program
	Exercises() []program.ExerciseDetail
	Exercise(id string) (*program.ExerciseDetail, error)
	NutritionTarget(ctx context.Context, mode string) (*program.NutritionTarget, error)

	Settings(ctx context.Context) (*tracker.Settings, error)
	CompleteOnboarding(ctx context.Context, patch tracker.SettingsPatch) (*tracker.Settings, error)
	UpdateSettings(ctx context.Context, patch tracker.SettingsPatch) (*tracker.Settings, error)

	LogSteps(ctx context.Context, date string, in tracker.StepsInput) (*tracker.StepsLog, error)
	StepsLog(ctx context.Context, date string) (*tracker.StepsLog, error)
	StepsLogs(ctx context.Context, q store.Query) ([]tracker.StepsLog, error)
	LogBody(ctx context.Context, date string, in tracker.BodyInput) (*tracker.BodyLog, error)
	BodyLog(ctx context.Context, date string) (*tracker.BodyLog, error)
	BodyLogs(ctx context.Context, q store.Query) ([]tracker.BodyLog, error)
	LogNutrition(ctx context.Context, date string, in tracker.NutritionInput) (*tracker.NutritionLog, error)
	NutritionLog(ctx context.Context, date string) (*tracker.NutritionLog, error)
	LogRow(ctx context.Context, date, exercise string, in tracker.RowInput) (*tracker.RowLog, error)
	RowLogs(ctx context.Context, date string) ([]tracker.RowLog, error)
	LogMeal(ctx context.Context, date string, mealIndex int, in tracker.MealInput) (*tracker.MealLog, error)
	MealLogs(ctx context.Context, date string) ([]tracker.MealLog, error)

	Workout(ctx context.Context, date string) (*tracker.Workout, error)
	StartWorkout(ctx context.Context, date string) (*tracker.WorkoutSession, error)
	FinishWorkout(ctx context.Context, date string, in tracker.FinishInput) (*tracker.WorkoutSession, error)
	SkipWorkout(ctx context.Context, date, notes string) (*tracker.WorkoutSession, error)
	LogSet(ctx context.Context, date, exerciseID string, in tracker.SetInput) (*tracker.ExerciseLog, error)
}

type statsService interface {
	Streak(ctx context.Context) (stats.Streak, error)
	Adherence(ctx context.Context, days int) (stats.Adherence, error)
	WeeklyAdherence(ctx context.Context) (stats.WeeklyAdherence, error)
	Trends(ctx context.Context) (stats.Trends, error)
}

type remindersService interface {
	Banners(ctx context.Context) ([]reminders.Banner, error)
}

type backupService interface {
	ExportJSON(ctx context.Context) ([]byte, string, error)
	Restore(ctx context.Context, data []byte) (int, error)
}

type changeNotifier interface {
	Subscribe(kind store.Kind, fn func(store.Change)) func()
}

// compile time checks against the concrete services
var (
	_ trackerService   = (*tracker.Service)(nil)
	_ statsService     = (*stats.Service)(nil)
	_ remindersService = (*reminders.Service)(nil)
	_ backupService    = (*backup.Service)(nil)
	_ changeNotifier   = (*tracker.Service)(nil)
)
