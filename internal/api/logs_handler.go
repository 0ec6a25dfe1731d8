package api

import (
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/tracker"

	"github.com/gorilla/mux"
)

func (handler *Handler) HandleLogSteps(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.steps.put")
	defer span.End()

	date := mux.Vars(r)["date"]
	var in tracker.StepsInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, "log steps", err)
		return
	}
	stepsLog, err := handler.tracker.LogSteps(ctx, date, in)
	if err != nil {
		writeError(w, "log steps "+date, err)
		return
	}
	writeJSON(w, stepsLog)
}

func (handler *Handler) HandleGetSteps(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.steps.get")
	defer span.End()

	date := mux.Vars(r)["date"]
	stepsLog, err := handler.tracker.StepsLog(ctx, date)
	if err != nil {
		writeError(w, "get steps "+date, err)
		return
	}
	writeJSON(w, stepsLog)
}

func (handler *Handler) HandleListSteps(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.steps.list")
	defer span.End()

	q, err := queryFromRequest(r)
	if err != nil {
		writeError(w, "list steps", err)
		return
	}
	logs, err := handler.tracker.StepsLogs(ctx, q)
	if err != nil {
		writeError(w, "list steps", err)
		return
	}
	writeJSON(w, logs)
}

func (handler *Handler) HandleLogBody(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.put")
	defer span.End()

	date := mux.Vars(r)["date"]
	var in tracker.BodyInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, "log body", err)
		return
	}
	bodyLog, err := handler.tracker.LogBody(ctx, date, in)
	if err != nil {
		writeError(w, "log body "+date, err)
		return
	}
	writeJSON(w, bodyLog)
}

func (handler *Handler) HandleGetBody(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.get")
	defer span.End()

	date := mux.Vars(r)["date"]
	bodyLog, err := handler.tracker.BodyLog(ctx, date)
	if err != nil {
		writeError(w, "get body "+date, err)
		return
	}
	writeJSON(w, bodyLog)
}

func (handler *Handler) HandleListBody(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.list")
	defer span.End()

	q, err := queryFromRequest(r)
	if err != nil {
		writeError(w, "list body", err)
		return
	}
	logs, err := handler.tracker.BodyLogs(ctx, q)
	if err != nil {
		writeError(w, "list body", err)
		return
	}
	writeJSON(w, logs)
}

func (handler *Handler) HandleLogNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.put")
	defer span.End()

	date := mux.Vars(r)["date"]
	var in tracker.NutritionInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, "log nutrition", err)
		return
	}
	nutritionLog, err := handler.tracker.LogNutrition(ctx, date, in)
	if err != nil {
		writeError(w, "log nutrition "+date, err)
		return
	}
	writeJSON(w, nutritionLog)
}

func (handler *Handler) HandleGetNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.get")
	defer span.End()

	date := mux.Vars(r)["date"]
	nutritionLog, err := handler.tracker.NutritionLog(ctx, date)
	if err != nil {
		writeError(w, "get nutrition "+date, err)
		return
	}
	writeJSON(w, nutritionLog)
}

func (handler *Handler) HandleLogRow(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rows.put")
	defer span.End()

	vars := mux.Vars(r)
	var in tracker.RowInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, "log row", err)
		return
	}
	rowLog, err := handler.tracker.LogRow(ctx, vars["date"], vars["key"], in)
	if err != nil {
		writeError(w, "log row "+vars["date"], err)
		return
	}
	writeJSON(w, rowLog)
}

func (handler *Handler) HandleGetRows(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rows.get")
	defer span.End()

	date := mux.Vars(r)["date"]
	rows, err := handler.tracker.RowLogs(ctx, date)
	if err != nil {
		writeError(w, "get rows "+date, err)
		return
	}
	writeJSON(w, rows)
}

func (handler *Handler) HandleLogMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.put")
	defer span.End()

	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		writeError(w, "log meal", apperr.Validation("meal index must be a number"))
		return
	}
	var in tracker.MealInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, "log meal", err)
		return
	}
	mealLog, err := handler.tracker.LogMeal(ctx, vars["date"], index, in)
	if err != nil {
		writeError(w, "log meal "+vars["date"], err)
		return
	}
	writeJSON(w, mealLog)
}

func (handler *Handler) HandleGetMeals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.get")
	defer span.End()

	date := mux.Vars(r)["date"]
	meals, err := handler.tracker.MealLogs(ctx, date)
	if err != nil {
		writeError(w, "get meals "+date, err)
		return
	}
	writeJSON(w, meals)
}
