package tracker

import (
	"encoding/json"
	"time"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/calendar"
	"github.com/2beens/fittrack/internal/program"
	"github.com/2beens/fittrack/internal/store"
)

type (
	SessionStatus string
	Mood          string
	LogSource     string
	TimeOfDay     string
	MealContext   string
)

const (
	StatusInProgress SessionStatus = "in-progress"
	StatusCompleted  SessionStatus = "completed"
	StatusSkipped    SessionStatus = "skipped"

	MoodGreat   Mood = "great"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodTired   Mood = "tired"
	MoodBad     Mood = "bad"

	SourceManual    LogSource = "manual"
	SourceHealthAPI LogSource = "health-api"

	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"

	MealStandard    MealContext = "standard"
	MealPreWorkout  MealContext = "pre-workout"
	MealPostWorkout MealContext = "post-workout"
	MealSuhoor      MealContext = "suhoor"
	MealIftar       MealContext = "iftar"
)

func (m Mood) IsValid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodNeutral, MoodTired, MoodBad:
		return true
	}
	return false
}

func (s LogSource) IsValid() bool {
	return s == SourceManual || s == SourceHealthAPI
}

func (t TimeOfDay) IsValid() bool {
	return t == Morning || t == Afternoon || t == Evening
}

func (c MealContext) IsValid() bool {
	switch c {
	case MealStandard, MealPreWorkout, MealPostWorkout, MealSuhoor, MealIftar:
		return true
	}
	return false
}

// Meta is filled from the store record, it is not part of the stored data.
type Meta struct {
	ID        string    `json:"id,omitempty"`
	Date      string    `json:"date,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Meta) meta() *Meta { return m }

type WorkoutSession struct {
	Meta
	ProgramID         string        `json:"programId"`
	SessionTemplateID string        `json:"sessionTemplateId"`
	SessionName       string        `json:"sessionName"`
	Status            SessionStatus `json:"status"`
	StartedAt         int64         `json:"startedAt"`
	CompletedAt       *int64        `json:"completedAt,omitempty"`
	DurationSeconds   *int          `json:"durationSeconds,omitempty"`
	OverallPainScore  int           `json:"overallPainScore"`
	PerceivedExertion int           `json:"perceivedExertion"`
	Mood              Mood          `json:"mood"`
	BodyweightKg      *float64      `json:"bodyweightKg,omitempty"`
	Notes             string        `json:"notes,omitempty"`
}

type ExerciseSet struct {
	SetNumber  int     `json:"setNumber"`
	TargetReps int     `json:"targetReps"`
	ActualReps int     `json:"actualReps"`
	WeightKg   float64 `json:"weightKg"`
	RIR        int     `json:"rir"`
	Completed  bool    `json:"completed"`
	PainScore  *int    `json:"painScore,omitempty"`
	Timestamp  int64   `json:"timestamp"`
}

type ExerciseLog struct {
	Meta
	WorkoutSessionID   string        `json:"workoutSessionId"`
	ExerciseID         string        `json:"exerciseId"`
	ExerciseName       string        `json:"exerciseName"`
	IsReplacement      bool          `json:"isReplacement"`
	OriginalExerciseID string        `json:"originalExerciseId,omitempty"`
	Sets               []ExerciseSet `json:"sets"`
	Notes              string        `json:"notes,omitempty"`
}

type StepsLog struct {
	Meta
	Steps     int       `json:"steps"`
	GoalSteps int       `json:"goalSteps"`
	GoalMet   bool      `json:"goalMet"`
	Source    LogSource `json:"source"`
	Notes     string    `json:"notes,omitempty"`
}

type BodyLog struct {
	Meta
	WeightKg       *float64  `json:"weightKg,omitempty"`
	WaistCm        *float64  `json:"waistCm,omitempty"`
	BodyFatPercent *float64  `json:"bodyFatPercent,omitempty"`
	TimeOfDay      TimeOfDay `json:"timeOfDay"`
	Notes          string    `json:"notes,omitempty"`
}

type NutritionLog struct {
	Meta
	Calories    int         `json:"calories"`
	ProteinG    float64     `json:"proteinG"`
	CarbsG      *float64    `json:"carbsG,omitempty"`
	FatG        *float64    `json:"fatG,omitempty"`
	WaterMl     *int        `json:"waterMl,omitempty"`
	MealContext MealContext `json:"mealContext"`
	Notes       string      `json:"notes,omitempty"`
}

// RowLog tracks one exercise row of the flat daily plan.
type RowLog struct {
	Meta
	PlanMode    program.Mode `json:"planMode"`
	ExerciseKey string       `json:"exerciseKey"`
	UseAlt      bool         `json:"useAlt"`
	SetsDone    string       `json:"setsDone"`
	RepsDone    string       `json:"repsDone"`
	WeightKg    string       `json:"weightKg"`
	Completed   bool         `json:"completed"`
	Notes       string       `json:"notes"`
}

type MealLog struct {
	Meta
	PlanMode  program.Mode `json:"planMode"`
	MealIndex int          `json:"mealIndex"`
	Completed bool         `json:"completed"`
	Notes     string       `json:"notes"`
}

type recordPtr[T any] interface {
	*T
	meta() *Meta
}

func decode[T any, P recordPtr[T]](rec *store.Record) (*T, error) {
	v := new(T)
	if err := json.Unmarshal(rec.Data, v); err != nil {
		return nil, apperr.Storage(err, "decode %s record %s", rec.Kind, rec.ID)
	}
	m := P(v).meta()
	m.ID = rec.ID
	m.Date = rec.Date
	m.UpdatedAt = rec.UpdatedAt
	return v, nil
}

func decodeAll[T any, P recordPtr[T]](recs []store.Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for i := range recs {
		v, err := decode[T, P](&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func validateDate(date string) error {
	if !calendar.IsValidISO(date) {
		return apperr.Validation("invalid date %q, expected YYYY-MM-DD", date)
	}
	return nil
}
