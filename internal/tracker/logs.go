package tracker

import (
	"context"
	"strconv"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/program"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

type StepsInput struct {
	Steps  int       `json:"steps"`
	Source LogSource `json:"source,omitempty"`
	Notes  *string   `json:"notes,omitempty"`
}

// LogSteps records the step count for date. The goal is snapshotted from the
// current settings.
func (s *Service) LogSteps(ctx context.Context, date string, in StepsInput) (_ *StepsLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.steps.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateDate(date); err != nil {
		return nil, err
	}
	if in.Steps < 0 {
		return nil, apperr.Validation("steps must not be negative")
	}
	if in.Source != "" && !in.Source.IsValid() {
		return nil, apperr.Validation(`source must be "manual" or "health-api"`)
	}

	settings, err := s.SettingsOrDefault(ctx)
	if err != nil {
		return nil, err
	}

	patch := store.Patch{
		"steps":     in.Steps,
		"goalSteps": settings.StepGoalPerDay,
		"goalMet":   in.Steps >= settings.StepGoalPerDay,
	}
	if in.Source != "" {
		patch["source"] = in.Source
	}
	if in.Notes != nil {
		patch["notes"] = *in.Notes
	}

	rec, err := s.store.Upsert(ctx, store.KindStepsLogs, date, "", patch, store.Patch{"source": SourceManual})
	if err != nil {
		return nil, err
	}
	return decode[StepsLog](rec)
}

func (s *Service) StepsLog(ctx context.Context, date string) (*StepsLog, error) {
	rec, err := s.store.Get(ctx, store.KindStepsLogs, date, "")
	if err != nil {
		return nil, err
	}
	return decode[StepsLog](rec)
}

func (s *Service) StepsLogs(ctx context.Context, q store.Query) ([]StepsLog, error) {
	recs, err := s.store.List(ctx, store.KindStepsLogs, q)
	if err != nil {
		return nil, err
	}
	return decodeAll[StepsLog](recs)
}

// BodyInput takes weight and waist in the given units; they are stored in
// kilograms and centimetres.
type BodyInput struct {
	Weight         *float64   `json:"weight,omitempty"`
	WeightUnit     string     `json:"weightUnit,omitempty"`
	Waist          *float64   `json:"waist,omitempty"`
	WaistUnit      string     `json:"waistUnit,omitempty"`
	BodyFatPercent *float64   `json:"bodyFatPercent,omitempty"`
	TimeOfDay      *TimeOfDay `json:"timeOfDay,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

func (s *Service) LogBody(ctx context.Context, date string, in BodyInput) (_ *BodyLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.body.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateDate(date); err != nil {
		return nil, err
	}
	weightUnit, err := parseWeightUnit(in.WeightUnit)
	if err != nil {
		return nil, err
	}
	waistUnit, err := parseWaistUnit(in.WaistUnit)
	if err != nil {
		return nil, err
	}

	patch := store.Patch{}
	if in.Weight != nil {
		if *in.Weight <= 0 {
			return nil, apperr.Validation("weight must be positive")
		}
		patch["weightKg"] = ToKg(*in.Weight, weightUnit)
	}
	if in.Waist != nil {
		if *in.Waist <= 0 {
			return nil, apperr.Validation("waist must be positive")
		}
		patch["waistCm"] = ToCm(*in.Waist, waistUnit)
	}
	if in.BodyFatPercent != nil {
		if *in.BodyFatPercent < 0 || *in.BodyFatPercent > 100 {
			return nil, apperr.Validation("body fat must be between 0 and 100 percent")
		}
		patch["bodyFatPercent"] = *in.BodyFatPercent
	}
	if in.TimeOfDay != nil {
		if !in.TimeOfDay.IsValid() {
			return nil, apperr.Validation(`time of day must be "morning", "afternoon" or "evening"`)
		}
		patch["timeOfDay"] = *in.TimeOfDay
	}
	if in.Notes != nil {
		patch["notes"] = *in.Notes
	}

	rec, err := s.store.Upsert(ctx, store.KindBodyLogs, date, "", patch, store.Patch{"timeOfDay": Morning})
	if err != nil {
		return nil, err
	}
	return decode[BodyLog](rec)
}

func (s *Service) BodyLog(ctx context.Context, date string) (*BodyLog, error) {
	rec, err := s.store.Get(ctx, store.KindBodyLogs, date, "")
	if err != nil {
		return nil, err
	}
	return decode[BodyLog](rec)
}

func (s *Service) BodyLogs(ctx context.Context, q store.Query) ([]BodyLog, error) {
	recs, err := s.store.List(ctx, store.KindBodyLogs, q)
	if err != nil {
		return nil, err
	}
	return decodeAll[BodyLog](recs)
}

type NutritionInput struct {
	Calories    *int         `json:"calories,omitempty"`
	ProteinG    *float64     `json:"proteinG,omitempty"`
	CarbsG      *float64     `json:"carbsG,omitempty"`
	FatG        *float64     `json:"fatG,omitempty"`
	WaterMl     *int         `json:"waterMl,omitempty"`
	MealContext *MealContext `json:"mealContext,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
}

func (in NutritionInput) validate() error {
	if in.Calories != nil && *in.Calories < 0 {
		return apperr.Validation("calories must not be negative")
	}
	if in.WaterMl != nil && *in.WaterMl < 0 {
		return apperr.Validation("water must not be negative")
	}
	macros := []struct {
		name  string
		value *float64
	}{
		{"protein", in.ProteinG},
		{"carbs", in.CarbsG},
		{"fat", in.FatG},
	}
	for _, m := range macros {
		if m.value != nil && *m.value < 0 {
			return apperr.Validation("%s must not be negative", m.name)
		}
	}
	if in.MealContext != nil && !in.MealContext.IsValid() {
		return apperr.Validation("unknown meal context %q", *in.MealContext)
	}
	return nil
}

func (s *Service) LogNutrition(ctx context.Context, date string, in NutritionInput) (_ *NutritionLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.nutrition.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateDate(date); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	patch, err := store.PatchOf(in)
	if err != nil {
		return nil, apperr.Validation("invalid nutrition log: %s", err)
	}

	defaults := store.Patch{
		"calories":    0,
		"proteinG":    0,
		"mealContext": MealStandard,
	}
	rec, err := s.store.Upsert(ctx, store.KindNutritionLogs, date, "", patch, defaults)
	if err != nil {
		return nil, err
	}
	return decode[NutritionLog](rec)
}

func (s *Service) NutritionLog(ctx context.Context, date string) (*NutritionLog, error) {
	rec, err := s.store.Get(ctx, store.KindNutritionLogs, date, "")
	if err != nil {
		return nil, err
	}
	return decode[NutritionLog](rec)
}

type RowInput struct {
	UseAlt    *bool   `json:"useAlt,omitempty"`
	SetsDone  *string `json:"setsDone,omitempty"`
	RepsDone  *string `json:"repsDone,omitempty"`
	WeightKg  *string `json:"weightKg,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// LogRow updates one exercise row of the day. exercise may be a display
// name or an already normalised key.
func (s *Service) LogRow(ctx context.Context, date, exercise string, in RowInput) (_ *RowLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.row.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateDate(date); err != nil {
		return nil, err
	}
	key := program.ExerciseKey(exercise)
	if key == "" {
		return nil, apperr.Validation("exercise key must not be empty")
	}
	patch, err := store.PatchOf(in)
	if err != nil {
		return nil, apperr.Validation("invalid row log: %s", err)
	}
	settings, err := s.SettingsOrDefault(ctx)
	if err != nil {
		return nil, err
	}

	defaults := store.Patch{
		"planMode":    settings.Mode,
		"exerciseKey": key,
		"useAlt":      false,
		"setsDone":    "",
		"repsDone":    "",
		"weightKg":    "",
		"completed":   false,
		"notes":       "",
	}
	rec, err := s.store.Upsert(ctx, store.KindRowLogs, date, key, patch, defaults)
	if err != nil {
		return nil, err
	}
	return decode[RowLog](rec)
}

func (s *Service) RowLogs(ctx context.Context, date string) ([]RowLog, error) {
	recs, err := s.store.List(ctx, store.KindRowLogs, store.Query{From: date, To: date})
	if err != nil {
		return nil, err
	}
	return decodeAll[RowLog](recs)
}

type MealInput struct {
	Completed *bool   `json:"completed,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (s *Service) LogMeal(ctx context.Context, date string, mealIndex int, in MealInput) (_ *MealLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.meal.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateDate(date); err != nil {
		return nil, err
	}
	if mealIndex < 0 {
		return nil, apperr.Validation("meal index must not be negative")
	}
	patch, err := store.PatchOf(in)
	if err != nil {
		return nil, apperr.Validation("invalid meal log: %s", err)
	}
	settings, err := s.SettingsOrDefault(ctx)
	if err != nil {
		return nil, err
	}

	defaults := store.Patch{
		"planMode":  settings.Mode,
		"mealIndex": mealIndex,
		"completed": false,
		"notes":     "",
	}
	rec, err := s.store.Upsert(ctx, store.KindMealLogs, date, strconv.Itoa(mealIndex), patch, defaults)
	if err != nil {
		return nil, err
	}
	return decode[MealLog](rec)
}

func (s *Service) MealLogs(ctx context.Context, date string) ([]MealLog, error) {
	recs, err := s.store.List(ctx, store.KindMealLogs, store.Query{From: date, To: date})
	if err != nil {
		return nil, err
	}
	return decodeAll[MealLog](recs)
}
