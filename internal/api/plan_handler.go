package api

import (
	"net/http"

	"github.com/2beens/fittrack/internal/tracker"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/gorilla/mux"
)

func (handler *Handler) HandlePlanToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.today")
	defer span.End()

	plan, err := handler.tracker.Plan(ctx, "")
	if err != nil {
		writeError(w, "plan today", err)
		return
	}
	writeJSON(w, plan)
}

func (handler *Handler) HandlePlanDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.day")
	defer span.End()

	date := mux.Vars(r)["date"]
	plan, err := handler.tracker.Plan(ctx, date)
	if err != nil {
		writeError(w, "plan day "+date, err)
		return
	}
	writeJSON(w, plan)
}

func (handler *Handler) HandlePlanWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.week")
	defer span.End()

	date := mux.Vars(r)["date"]
	week, err := handler.tracker.WeekPlan(ctx, date)
	if err != nil {
		writeError(w, "plan week "+date, err)
		return
	}
	writeJSON(w, week)
}

func (handler *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.get")
	defer span.End()

	settings, err := handler.tracker.Settings(ctx)
	if err != nil {
		writeError(w, "get settings", err)
		return
	}
	writeJSON(w, settings)
}

func (handler *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.update")
	defer span.End()

	var patch tracker.SettingsPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, "update settings", err)
		return
	}
	settings, err := handler.tracker.UpdateSettings(ctx, patch)
	if err != nil {
		writeError(w, "update settings", err)
		return
	}
	writeJSON(w, settings)
}

func (handler *Handler) HandleOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.onboarding")
	defer span.End()

	var patch tracker.SettingsPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, "onboarding", err)
		return
	}
	settings, err := handler.tracker.CompleteOnboarding(ctx, patch)
	if err != nil {
		writeError(w, "onboarding", err)
		return
	}
	writeJSON(w, settings)
}
