// Package backup exports every table into a single JSON document and
// restores such a document, replacing all stored data.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/calendar"
	"github.com/2beens/fittrack/internal/program"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/tracker"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Version of the backup format written by Export and accepted by Restore.
const Version = 2

// Entry is one record as it appears in a backup: its data plus "id" and
// "date".
type Entry map[string]any

type File struct {
	Version         int          `json:"version"`
	ExportedAt      string       `json:"exportedAt"`
	AppMode         program.Mode `json:"appMode"`
	Settings        Entry        `json:"settings"`
	WorkoutSessions []Entry      `json:"workoutSessions"`
	ExerciseLogs    []Entry      `json:"exerciseLogs"`
	StepsLogs       []Entry      `json:"stepsLogs"`
	BodyLogs        []Entry      `json:"bodyLogs"`
	NutritionLogs   []Entry      `json:"nutritionLogs"`
	RowLogs         []Entry      `json:"rowLogs"`
	MealLogs        []Entry      `json:"mealLogs"`
}

type table struct {
	kind    store.Kind
	field   string
	entries *[]Entry
}

// tables pairs every record kind except settings with its array in f.
func (f *File) tables() []table {
	return []table{
		{store.KindWorkoutSessions, "workoutSessions", &f.WorkoutSessions},
		{store.KindExerciseLogs, "exerciseLogs", &f.ExerciseLogs},
		{store.KindStepsLogs, "stepsLogs", &f.StepsLogs},
		{store.KindBodyLogs, "bodyLogs", &f.BodyLogs},
		{store.KindNutritionLogs, "nutritionLogs", &f.NutritionLogs},
		{store.KindRowLogs, "rowLogs", &f.RowLogs},
		{store.KindMealLogs, "mealLogs", &f.MealLogs},
	}
}

// FileName is the suggested name of a backup exported on date.
func FileName(date string) string {
	return fmt.Sprintf("fittrack-backup-%s.json", date)
}

type Service struct {
	accessor       *store.Accessor
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(accessor *store.Accessor, metricsManager *metrics.Manager) *Service {
	return &Service{
		accessor:       accessor,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) observe(op string, start time.Time, err error) {
	if s.metricsManager == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "failed"
	}
	s.metricsManager.CounterBackups.WithLabelValues(op, result).Inc()
	s.metricsManager.HistBackupDuration.Observe(time.Since(start).Seconds())
}

// Export reads every table into a backup File. There is nothing to export
// before onboarding.
func (s *Service) Export(ctx context.Context) (_ *File, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backup.export")
	start := time.Now()
	defer func() {
		s.observe("export", start, err)
		tracing.EndSpanWithErrCheck(span, err)
	}()

	settingsRec, err := s.accessor.Get(ctx, store.KindSettings, "", tracker.SettingsKey)
	if apperr.IsNotFound(err) {
		return nil, apperr.NotFound("no settings to export, complete onboarding first")
	}
	if err != nil {
		return nil, err
	}
	settings, err := toEntry(settingsRec)
	if err != nil {
		return nil, err
	}
	delete(settings, "date")
	mode, _ := settings["mode"].(string)

	f := &File{
		Version:    Version,
		ExportedAt: s.now().UTC().Format(time.RFC3339),
		AppMode:    program.Mode(mode),
		Settings:   settings,
	}
	for _, t := range f.tables() {
		recs, err := s.accessor.List(ctx, t.kind, store.Query{})
		if err != nil {
			return nil, err
		}
		entries := make([]Entry, 0, len(recs))
		for i := range recs {
			e, err := toEntry(&recs[i])
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		*t.entries = entries
	}
	return f, nil
}

// ExportJSON is Export encoded as an indented JSON document, along with its
// file name.
func (s *Service) ExportJSON(ctx context.Context) ([]byte, string, error) {
	f, err := s.Export(ctx)
	if err != nil {
		return nil, "", err
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("marshal backup: %w", err)
	}
	return data, FileName(calendar.ToISO(s.now())), nil
}

func toEntry(rec *store.Record) (Entry, error) {
	e := Entry{}
	if err := json.Unmarshal(rec.Data, &e); err != nil {
		return nil, apperr.Storage(err, "decode %s record %s", rec.Kind, rec.ID)
	}
	e["id"] = rec.ID
	e["date"] = rec.Date
	return e, nil
}

// Parse validates a backup document. Every check runs before anything is
// written, so a rejected file leaves the store as it was.
func Parse(data []byte) (*File, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperr.Validation("File is not valid JSON.")
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, apperr.Validation("File is not a valid JSON object.")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, apperr.Validation("File is not a valid JSON object.")
	}
	rawVersion, ok := fields["version"]
	if !ok || !bytes.Equal(bytes.TrimSpace(rawVersion), []byte(strconv.Itoa(Version))) {
		got := "none"
		if ok {
			got = string(bytes.TrimSpace(rawVersion))
		}
		return nil, apperr.Validation("Unsupported backup version: %s. Expected %d.", got, Version)
	}

	var settings map[string]any
	if raw, ok := fields["settings"]; !ok || json.Unmarshal(raw, &settings) != nil || settings == nil {
		return nil, apperr.Validation(`Backup is missing "settings" field.`)
	}
	if mode, _ := settings["mode"].(string); !program.Mode(mode).IsValid() {
		return nil, apperr.Validation(`Backup settings.mode must be "normal" or "ramadan".`)
	}

	f := &File{
		Version:  Version,
		Settings: settings,
	}
	if raw, ok := fields["exportedAt"]; ok {
		_ = json.Unmarshal(raw, &f.ExportedAt)
	}
	f.AppMode = program.Mode(settings["mode"].(string))

	for _, t := range f.tables() {
		raw, ok := fields[t.field]
		if !ok || string(bytes.TrimSpace(raw)) == "null" {
			*t.entries = []Entry{}
			continue
		}
		if err := json.Unmarshal(raw, t.entries); err != nil {
			return nil, apperr.Validation("Backup field %q must be an array of objects.", t.field)
		}
	}
	return f, nil
}

// Records converts f into store records. Ids found in the file are kept so
// references between records, e.g. an exercise log's workoutSessionId,
// survive a round trip.
func (f *File) Records(now time.Time) ([]store.Record, error) {
	settings, err := toRecord(store.KindSettings, "settings", f.Settings, now)
	if err != nil {
		return nil, err
	}
	records := []store.Record{settings}
	for _, t := range f.tables() {
		for _, e := range *t.entries {
			rec, err := toRecord(t.kind, t.field, e, now)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

func toRecord(kind store.Kind, field string, e Entry, now time.Time) (store.Record, error) {
	data := make(map[string]any, len(e))
	for k, v := range e {
		if k != "id" && k != "date" {
			data[k] = v
		}
	}

	date := ""
	if kind != store.KindSettings {
		date, _ = e["date"].(string)
		if !calendar.IsValidISO(date) {
			return store.Record{}, apperr.Validation("Backup %s entry has an invalid date %q.", field, e["date"])
		}
	}
	key, err := recordKey(kind, field, data)
	if err != nil {
		return store.Record{}, err
	}

	id, _ := e["id"].(string)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return store.Record{}, apperr.Validation("Backup %s entry cannot be encoded: %s", field, err)
	}
	return store.Record{
		ID:        id,
		Kind:      kind,
		Date:      date,
		Key:       key,
		Data:      raw,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// recordKey derives the secondary key a record is stored under.
func recordKey(kind store.Kind, field string, data map[string]any) (string, error) {
	switch kind {
	case store.KindSettings:
		return tracker.SettingsKey, nil
	case store.KindExerciseLogs:
		return stringField(field, data, "exerciseId")
	case store.KindRowLogs:
		return stringField(field, data, "exerciseKey")
	case store.KindMealLogs:
		idx, ok := data["mealIndex"].(float64)
		if !ok || idx < 0 || idx != float64(int(idx)) {
			return "", apperr.Validation("Backup %s entry has an invalid mealIndex.", field)
		}
		return strconv.Itoa(int(idx)), nil
	default:
		return "", nil
	}
}

func stringField(field string, data map[string]any, name string) (string, error) {
	v, _ := data[name].(string)
	if v == "" {
		return "", apperr.Validation("Backup %s entry is missing %q.", field, name)
	}
	return v, nil
}

// Restore validates data and, only if it is a valid backup, replaces all
// stored records with its content. It returns the number of records
// restored.
func (s *Service) Restore(ctx context.Context, data []byte) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backup.restore")
	start := time.Now()
	defer func() {
		s.observe("restore", start, err)
		tracing.EndSpanWithErrCheck(span, err)
	}()

	f, err := Parse(data)
	if err != nil {
		return 0, err
	}
	records, err := f.Records(s.now())
	if err != nil {
		return 0, err
	}
	if err := s.accessor.ReplaceAll(ctx, records); err != nil {
		return 0, err
	}

	log.Infof("restored %d records from backup exported at %s", len(records), f.ExportedAt)
	return len(records), nil
}
