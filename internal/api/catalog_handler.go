package api

import (
	"net/http"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/gorilla/mux"
)

func (handler *Handler) HandlePrograms(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs")
	defer span.End()

	writeJSON(w, handler.tracker.Programs())
}

func (handler *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises")
	defer span.End()

	writeJSON(w, handler.tracker.Exercises())
}

func (handler *Handler) HandleExercise(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercise")
	defer span.End()

	id := mux.Vars(r)["id"]
	exercise, err := handler.tracker.Exercise(id)
	if err != nil {
		writeError(w, "exercise "+id, err)
		return
	}
	writeJSON(w, exercise)
}

// HandleNutritionTarget serves the daily target of ?mode, the user's current
// mode when missing.
func (handler *Handler) HandleNutritionTarget(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.target")
	defer span.End()

	target, err := handler.tracker.NutritionTarget(ctx, r.URL.Query().Get("mode"))
	if err != nil {
		writeError(w, "nutrition target", err)
		return
	}
	writeJSON(w, target)
}
