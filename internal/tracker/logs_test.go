package tracker_test

import (
	"context"
	"testing"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/program"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/tracker"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSteps(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()
	onboard(t, svc, tracker.SettingsPatch{StepGoalPerDay: ptr(8000)})

	log, err := svc.LogSteps(ctx, "2026-10-14", tracker.StepsInput{Steps: 7999})
	require.NoError(t, err)
	assert.Equal(t, 7999, log.Steps)
	assert.Equal(t, 8000, log.GoalSteps)
	assert.False(t, log.GoalMet)
	assert.Equal(t, tracker.SourceManual, log.Source)
	assert.Equal(t, "2026-10-14", log.Date)

	log2, err := svc.LogSteps(ctx, "2026-10-14", tracker.StepsInput{Steps: 8000, Notes: ptr("evening walk")})
	require.NoError(t, err)
	assert.Equal(t, log.ID, log2.ID)
	assert.True(t, log2.GoalMet)
	assert.Equal(t, "evening walk", log2.Notes)

	// goal changes do not rewrite history
	_, err = svc.UpdateSettings(ctx, tracker.SettingsPatch{StepGoalPerDay: ptr(12000)})
	require.NoError(t, err)
	got, err := svc.StepsLog(ctx, "2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, 8000, got.GoalSteps)

	assert.Equal(t, 2, backend.Len())
}

func TestLogSteps_Validation(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()

	_, err := svc.LogSteps(ctx, "2026-10-14", tracker.StepsInput{Steps: -1})
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "steps must not be negative", apperr.Message(err))

	_, err = svc.LogSteps(ctx, "14.10.2026", tracker.StepsInput{Steps: 100})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.LogSteps(ctx, "2026-10-14", tracker.StepsInput{Steps: 100, Source: "watch"})
	assert.True(t, apperr.IsValidation(err))

	assert.Equal(t, 0, backend.Len())
}

func TestLogSteps_BeforeOnboardingUsesDefaultGoal(t *testing.T) {
	svc, _ := newTestService(t)
	log, err := svc.LogSteps(context.Background(), "2026-10-14", tracker.StepsInput{Steps: 10000, Source: tracker.SourceHealthAPI})
	require.NoError(t, err)
	assert.Equal(t, tracker.DefaultStepGoal, log.GoalSteps)
	assert.True(t, log.GoalMet)
	assert.Equal(t, tracker.SourceHealthAPI, log.Source)
}

func TestLogSteps_StorageError(t *testing.T) {
	svc, backend := newTestService(t)
	backend.SetUnavailable(true)

	_, err := svc.LogSteps(context.Background(), "2026-10-14", tracker.StepsInput{Steps: 100})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrStorage)
}

func TestLogBody(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	log, err := svc.LogBody(ctx, "2026-10-14", tracker.BodyInput{Weight: ptr(180.0), WeightUnit: "lbs"})
	require.NoError(t, err)
	require.NotNil(t, log.WeightKg)
	assert.InDelta(t, 81.65, *log.WeightKg, 0.01)
	assert.Equal(t, tracker.Morning, log.TimeOfDay)
	assert.Nil(t, log.WaistCm)

	log, err = svc.LogBody(ctx, "2026-10-14", tracker.BodyInput{
		Waist:     ptr(34.0),
		WaistUnit: "in",
		TimeOfDay: ptr(tracker.Evening),
	})
	require.NoError(t, err)
	assert.InDelta(t, 81.65, *log.WeightKg, 0.01)
	assert.InDelta(t, 86.36, *log.WaistCm, 0.01)
	assert.Equal(t, tracker.Evening, log.TimeOfDay)

	_, err = svc.LogBody(ctx, "2026-10-14", tracker.BodyInput{Weight: ptr(-1.0)})
	assert.True(t, apperr.IsValidation(err))
	_, err = svc.LogBody(ctx, "2026-10-14", tracker.BodyInput{BodyFatPercent: ptr(120.0)})
	assert.True(t, apperr.IsValidation(err))
	_, err = svc.LogBody(ctx, "2026-10-14", tracker.BodyInput{Weight: ptr(80.0), WeightUnit: "stone"})
	assert.True(t, apperr.IsValidation(err))
}

func TestLogNutrition(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	log, err := svc.LogNutrition(ctx, "2026-10-14", tracker.NutritionInput{WaterMl: ptr(1500)})
	require.NoError(t, err)
	assert.Equal(t, 0, log.Calories)
	assert.Equal(t, 0.0, log.ProteinG)
	assert.Equal(t, tracker.MealStandard, log.MealContext)
	assert.Equal(t, 1500, *log.WaterMl)

	log, err = svc.LogNutrition(ctx, "2026-10-14", tracker.NutritionInput{
		Calories:    ptr(2200),
		ProteinG:    ptr(165.5),
		MealContext: ptr(tracker.MealIftar),
	})
	require.NoError(t, err)
	assert.Equal(t, 2200, log.Calories)
	assert.Equal(t, 165.5, log.ProteinG)
	assert.Equal(t, tracker.MealIftar, log.MealContext)
	assert.Equal(t, 1500, *log.WaterMl)

	_, err = svc.LogNutrition(ctx, "2026-10-14", tracker.NutritionInput{FatG: ptr(-3.0)})
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "fat must not be negative", apperr.Message(err))
	_, err = svc.LogNutrition(ctx, "2026-10-14", tracker.NutritionInput{MealContext: ptr(tracker.MealContext("brunch"))})
	assert.True(t, apperr.IsValidation(err))
}

func TestLogRow(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()
	onboard(t, svc, tracker.SettingsPatch{Mode: ptr(program.ModeRamadan)})

	log, err := svc.LogRow(ctx, "2026-10-14", "Chest Press (Machine)", tracker.RowInput{SetsDone: ptr("3")})
	require.NoError(t, err)
	assert.Equal(t, "chest_press_machine", log.ExerciseKey)
	assert.Equal(t, program.ModeRamadan, log.PlanMode)
	assert.Equal(t, "3", log.SetsDone)
	assert.Equal(t, "", log.RepsDone)
	assert.False(t, log.UseAlt)
	assert.False(t, log.Completed)

	// the normalised key addresses the same row
	log, err = svc.LogRow(ctx, "2026-10-14", "chest_press_machine", tracker.RowInput{Completed: ptr(true)})
	require.NoError(t, err)
	assert.True(t, log.Completed)
	assert.Equal(t, "3", log.SetsDone)

	_, err = svc.LogRow(ctx, "2026-10-14", "Lat Pulldown", tracker.RowInput{UseAlt: ptr(true)})
	require.NoError(t, err)

	rows, err := svc.RowLogs(ctx, "2026-10-14")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 3, backend.Len())

	_, err = svc.LogRow(ctx, "2026-10-14", " -- ", tracker.RowInput{})
	assert.True(t, apperr.IsValidation(err))
}

func TestLogMeal(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	onboard(t, svc, tracker.SettingsPatch{})

	for i := range 3 {
		_, err := svc.LogMeal(ctx, "2026-10-14", i, tracker.MealInput{Completed: ptr(gofakeit.Bool())})
		require.NoError(t, err)
	}
	log, err := svc.LogMeal(ctx, "2026-10-14", 1, tracker.MealInput{Completed: ptr(true), Notes: ptr("late")})
	require.NoError(t, err)
	assert.Equal(t, 1, log.MealIndex)
	assert.True(t, log.Completed)
	assert.Equal(t, "late", log.Notes)
	assert.Equal(t, program.ModeNormal, log.PlanMode)

	meals, err := svc.MealLogs(ctx, "2026-10-14")
	require.NoError(t, err)
	assert.Len(t, meals, 3)

	_, err = svc.LogMeal(ctx, "2026-10-14", -1, tracker.MealInput{})
	assert.True(t, apperr.IsValidation(err))
}

func TestLists(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, d := range []string{"2026-10-10", "2026-10-11", "2026-10-12"} {
		_, err := svc.LogSteps(ctx, d, tracker.StepsInput{Steps: gofakeit.Number(0, 20000)})
		require.NoError(t, err)
		_, err = svc.LogBody(ctx, d, tracker.BodyInput{Weight: ptr(gofakeit.Float64Range(70, 90))})
		require.NoError(t, err)
	}

	steps, err := svc.StepsLogs(ctx, store.Query{From: "2026-10-11"})
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "2026-10-11", steps[0].Date)

	body, err := svc.BodyLogs(ctx, store.Query{To: "2026-10-10"})
	require.NoError(t, err)
	assert.Len(t, body, 1)
}
