package api

import (
	"net/http"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/tracker"

	"github.com/gorilla/mux"
)

type skipRequest struct {
	Notes string `json:"notes"`
}

func (handler *Handler) HandleGetWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	date := mux.Vars(r)["date"]
	workout, err := handler.tracker.Workout(ctx, date)
	if err != nil {
		writeError(w, "get workout "+date, err)
		return
	}
	writeJSON(w, workout)
}

func (handler *Handler) HandleStartWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.start")
	defer span.End()

	date := mux.Vars(r)["date"]
	session, err := handler.tracker.StartWorkout(ctx, date)
	if err != nil {
		writeError(w, "start workout "+date, err)
		return
	}
	writeJSON(w, session)
}

func (handler *Handler) HandleFinishWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.finish")
	defer span.End()

	date := mux.Vars(r)["date"]
	var in tracker.FinishInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, "finish workout", err)
		return
	}
	session, err := handler.tracker.FinishWorkout(ctx, date, in)
	if err != nil {
		writeError(w, "finish workout "+date, err)
		return
	}
	writeJSON(w, session)
}

func (handler *Handler) HandleSkipWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.skip")
	defer span.End()

	date := mux.Vars(r)["date"]
	var req skipRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "skip workout", err)
		return
	}
	session, err := handler.tracker.SkipWorkout(ctx, date, req.Notes)
	if err != nil {
		writeError(w, "skip workout "+date, err)
		return
	}
	writeJSON(w, session)
}

func (handler *Handler) HandleLogSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.set")
	defer span.End()

	vars := mux.Vars(r)
	var in tracker.SetInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, "log set", err)
		return
	}
	exerciseLog, err := handler.tracker.LogSet(ctx, vars["date"], vars["exerciseId"], in)
	if err != nil {
		writeError(w, "log set "+vars["date"]+"/"+vars["exerciseId"], err)
		return
	}
	writeJSON(w, exerciseLog)
}
