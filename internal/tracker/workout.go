package tracker

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// Workout is a session together with its exercise logs.
type Workout struct {
	Session   *WorkoutSession `json:"session"`
	Exercises []ExerciseLog   `json:"exercises"`
}

// StartWorkout opens the session scheduled for date. Starting a session that
// is already in progress or completed returns it unchanged.
func (s *Service) StartWorkout(ctx context.Context, date string) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.workout.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateDate(date); err != nil {
		return nil, err
	}
	plan, err := s.Plan(ctx, date)
	if err != nil {
		return nil, err
	}
	if !plan.IsGymDay {
		return nil, apperr.Validation("%s is a %s day, there is no gym session to start", date, plan.Session.Type)
	}

	startedAt := s.now().UnixMilli()
	defaults := store.Patch{
		"overallPainScore":  0,
		"perceivedExertion": 0,
		"mood":              MoodNeutral,
	}
	rec, err := s.store.Modify(ctx, store.KindWorkoutSessions, date, "", defaults, func(current store.Patch) (store.Patch, error) {
		if status, _ := current["status"].(string); status == string(StatusInProgress) || status == string(StatusCompleted) {
			return nil, nil
		}
		return store.Patch{
			"programId":         plan.ProgramID,
			"sessionTemplateId": plan.Session.ID,
			"sessionName":       plan.Session.Name,
			"status":            StatusInProgress,
			"startedAt":         startedAt,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return decode[WorkoutSession](rec)
}

type FinishInput struct {
	OverallPainScore  int      `json:"overallPainScore"`
	PerceivedExertion int      `json:"perceivedExertion"`
	Mood              Mood     `json:"mood"`
	BodyweightKg      *float64 `json:"bodyweightKg,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}

func (in FinishInput) validate() error {
	if in.OverallPainScore < 0 || in.OverallPainScore > 10 {
		return apperr.Validation("pain score must be between 0 and 10")
	}
	if in.PerceivedExertion < 1 || in.PerceivedExertion > 10 {
		return apperr.Validation("perceived exertion must be between 1 and 10")
	}
	if !in.Mood.IsValid() {
		return apperr.Validation("unknown mood %q", in.Mood)
	}
	if in.BodyweightKg != nil && *in.BodyweightKg <= 0 {
		return apperr.Validation("bodyweight must be positive")
	}
	return nil
}

// FinishWorkout completes the session started on date.
func (s *Service) FinishWorkout(ctx context.Context, date string, in FinishInput) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.workout.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateDate(date); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	completedAt := s.now().UnixMilli()
	rec, err := s.store.Modify(ctx, store.KindWorkoutSessions, date, "", nil, func(current store.Patch) (store.Patch, error) {
		status, _ := current["status"].(string)
		switch SessionStatus(status) {
		case StatusInProgress:
		case StatusCompleted:
			return nil, apperr.Validation("workout on %s is already completed", date)
		case StatusSkipped:
			return nil, apperr.Validation("workout on %s was skipped", date)
		default:
			return nil, apperr.NotFound("no workout started on %s", date)
		}

		startedAt, _ := current["startedAt"].(float64)
		patch := store.Patch{
			"status":            StatusCompleted,
			"completedAt":       completedAt,
			"durationSeconds":   max(0, (completedAt-int64(startedAt))/1000),
			"overallPainScore":  in.OverallPainScore,
			"perceivedExertion": in.PerceivedExertion,
			"mood":              in.Mood,
			"notes":             in.Notes,
		}
		if in.BodyweightKg != nil {
			patch["bodyweightKg"] = *in.BodyweightKg
		}
		return patch, nil
	})
	if err != nil {
		return nil, err
	}

	if in.OverallPainScore > 3 {
		log.Warnf("workout %s finished with pain score %d", date, in.OverallPainScore)
	}
	return decode[WorkoutSession](rec)
}

// SkipWorkout marks the gym session of date as skipped. A completed session
// cannot be skipped.
func (s *Service) SkipWorkout(ctx context.Context, date, notes string) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.workout.skip")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateDate(date); err != nil {
		return nil, err
	}
	plan, err := s.Plan(ctx, date)
	if err != nil {
		return nil, err
	}

	defaults := store.Patch{
		"programId":         plan.ProgramID,
		"sessionTemplateId": plan.Session.ID,
		"sessionName":       plan.Session.Name,
		"startedAt":         s.now().UnixMilli(),
		"overallPainScore":  0,
		"perceivedExertion": 0,
		"mood":              MoodNeutral,
	}
	rec, err := s.store.Modify(ctx, store.KindWorkoutSessions, date, "", defaults, func(current store.Patch) (store.Patch, error) {
		if status, _ := current["status"].(string); status == string(StatusCompleted) {
			return nil, apperr.Validation("workout on %s is already completed", date)
		}
		return store.Patch{"status": StatusSkipped, "notes": notes}, nil
	})
	if err != nil {
		return nil, err
	}
	return decode[WorkoutSession](rec)
}

type SetInput struct {
	SetNumber  int     `json:"setNumber"`
	TargetReps int     `json:"targetReps"`
	ActualReps int     `json:"actualReps"`
	WeightKg   float64 `json:"weightKg"`
	RIR        int     `json:"rir"`
	Completed  bool    `json:"completed"`
	PainScore  *int    `json:"painScore,omitempty"`
	// ReplacesExerciseID is set when the exercise is performed in place of
	// the programmed one.
	ReplacesExerciseID string `json:"replacesExerciseId,omitempty"`
}

func (in SetInput) validate() error {
	if in.SetNumber < 1 {
		return apperr.Validation("set number must be at least 1")
	}
	if in.TargetReps < 0 || in.ActualReps < 0 {
		return apperr.Validation("reps must not be negative")
	}
	if in.WeightKg < 0 {
		return apperr.Validation("weight must not be negative")
	}
	if in.RIR < 0 || in.RIR > 5 {
		return apperr.Validation("reps in reserve must be between 0 and 5")
	}
	if in.PainScore != nil && (*in.PainScore < 0 || *in.PainScore > 10) {
		return apperr.Validation("pain score must be between 0 and 10")
	}
	return nil
}

// LogSet records one set of exerciseID in the workout of date. Logging a set
// number again replaces it.
func (s *Service) LogSet(ctx context.Context, date, exerciseID string, in SetInput) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.workout.log_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateDate(date); err != nil {
		return nil, err
	}
	if exerciseID == "" {
		return nil, apperr.Validation("exercise id must not be empty")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	workout, err := s.Workout(ctx, date)
	if err != nil {
		return nil, err
	}
	if workout.Session.Status != StatusInProgress {
		return nil, apperr.Validation("workout on %s is %s, start it before logging sets", date, workout.Session.Status)
	}

	exercise := s.catalog.ExerciseOrStub(exerciseID)
	set := ExerciseSet{
		SetNumber:  in.SetNumber,
		TargetReps: in.TargetReps,
		ActualReps: in.ActualReps,
		WeightKg:   in.WeightKg,
		RIR:        in.RIR,
		Completed:  in.Completed,
		PainScore:  in.PainScore,
		Timestamp:  s.now().UnixMilli(),
	}
	defaults := store.Patch{
		"workoutSessionId": workout.Session.ID,
		"exerciseId":       exerciseID,
		"exerciseName":     exercise.Name,
		"isReplacement":    in.ReplacesExerciseID != "",
		"sets":             []ExerciseSet{},
	}
	if in.ReplacesExerciseID != "" {
		defaults["originalExerciseId"] = in.ReplacesExerciseID
	}

	rec, err := s.store.Modify(ctx, store.KindExerciseLogs, date, exerciseID, defaults, func(current store.Patch) (store.Patch, error) {
		sets, err := setsOf(current)
		if err != nil {
			return nil, err
		}
		return store.Patch{"sets": upsertSet(sets, set)}, nil
	})
	if err != nil {
		return nil, err
	}
	return decode[ExerciseLog](rec)
}

func setsOf(fields store.Patch) ([]ExerciseSet, error) {
	raw, err := json.Marshal(fields["sets"])
	if err != nil {
		return nil, apperr.Storage(err, "encode sets")
	}
	var sets []ExerciseSet
	if err := json.Unmarshal(raw, &sets); err != nil {
		return nil, apperr.Storage(err, "decode sets")
	}
	return sets, nil
}

func upsertSet(sets []ExerciseSet, set ExerciseSet) []ExerciseSet {
	for i := range sets {
		if sets[i].SetNumber == set.SetNumber {
			sets[i] = set
			return sets
		}
	}
	sets = append(sets, set)
	sort.Slice(sets, func(i, j int) bool { return sets[i].SetNumber < sets[j].SetNumber })
	return sets
}

// Workout returns the session of date with its exercise logs.
func (s *Service) Workout(ctx context.Context, date string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.workout.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rec, err := s.store.Get(ctx, store.KindWorkoutSessions, date, "")
	if err != nil {
		return nil, err
	}
	session, err := decode[WorkoutSession](rec)
	if err != nil {
		return nil, err
	}

	recs, err := s.store.List(ctx, store.KindExerciseLogs, store.Query{From: date, To: date})
	if err != nil {
		return nil, err
	}
	exercises, err := decodeAll[ExerciseLog](recs)
	if err != nil {
		return nil, err
	}
	return &Workout{Session: session, Exercises: exercises}, nil
}

func (s *Service) WorkoutSessions(ctx context.Context, q store.Query) ([]WorkoutSession, error) {
	recs, err := s.store.List(ctx, store.KindWorkoutSessions, q)
	if err != nil {
		return nil, err
	}
	return decodeAll[WorkoutSession](recs)
}
