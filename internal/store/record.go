package store

import (
	"context"
	"encoding/json"
	"time"
)

// Kind names a logical table. Every record is unique per (Kind, Date, Key).
type Kind string

const (
	KindSettings        Kind = "settings"
	KindWorkoutSessions Kind = "workout_sessions"
	KindExerciseLogs    Kind = "exercise_logs"
	KindStepsLogs       Kind = "steps_logs"
	KindBodyLogs        Kind = "body_logs"
	KindNutritionLogs   Kind = "nutrition_logs"
	KindRowLogs         Kind = "row_logs"
	KindMealLogs        Kind = "meal_logs"
)

// Kinds lists every table, settings first.
var Kinds = []Kind{
	KindSettings,
	KindWorkoutSessions,
	KindExerciseLogs,
	KindStepsLogs,
	KindBodyLogs,
	KindNutritionLogs,
	KindRowLogs,
	KindMealLogs,
}

func (k Kind) IsValid() bool {
	for _, kind := range Kinds {
		if kind == k {
			return true
		}
	}
	return false
}

type Record struct {
	ID        string          `db:"id" json:"id"`
	Kind      Kind            `db:"kind" json:"kind"`
	Date      string          `db:"date" json:"date"`
	Key       string          `db:"rkey" json:"key"`
	Data      json.RawMessage `db:"data" json:"data"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

// Query bounds a listing by date, both ends inclusive. Empty means unbounded.
type Query struct {
	From string
	To   string
}

func (q Query) Matches(date string) bool {
	return (q.From == "" || date >= q.From) && (q.To == "" || date <= q.To)
}

// Backend is a persistence engine for records. Implementations enforce the
// (kind, date, key) uniqueness themselves; Put is an insert-or-update that
// keeps the stored id and created_at of an existing row.
type Backend interface {
	Get(ctx context.Context, kind Kind, date, key string) (*Record, error)
	List(ctx context.Context, kind Kind, q Query) ([]Record, error)
	Put(ctx context.Context, rec Record) (*Record, error)
	Delete(ctx context.Context, kind Kind, date, key string) error
	// ReplaceAll wipes every table and inserts records, atomically.
	ReplaceAll(ctx context.Context, records []Record) error
	// Version is a counter that moves on every committed write, whichever
	// process made it. It never moves without a write.
	Version(ctx context.Context) (int64, error)
	Close() error
}
