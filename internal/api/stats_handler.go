package api

import (
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

type AdherenceResponse struct {
	stats.Adherence
	Week stats.WeeklyAdherence `json:"week"`
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.streak")
	defer span.End()

	streak, err := handler.stats.Streak(ctx)
	if err != nil {
		writeError(w, "streak", err)
		return
	}
	writeJSON(w, streak)
}

// HandleAdherence serves adherence over the last ?days (the configured
// lookback when missing) together with the current week.
func (handler *Handler) HandleAdherence(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.adherence")
	defer span.End()

	days := 0
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		var err error
		days, err = strconv.Atoi(daysParam)
		if err != nil || days <= 0 || days > stats.MaxLookbackDays {
			writeError(w, "adherence", apperr.Validation("days must be between 1 and %d", stats.MaxLookbackDays))
			return
		}
	}

	adherence, err := handler.stats.Adherence(ctx, days)
	if err != nil {
		writeError(w, "adherence", err)
		return
	}
	week, err := handler.stats.WeeklyAdherence(ctx)
	if err != nil {
		writeError(w, "weekly adherence", err)
		return
	}
	writeJSON(w, AdherenceResponse{Adherence: adherence, Week: week})
}

func (handler *Handler) HandleTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.trends")
	defer span.End()

	trends, err := handler.stats.Trends(ctx)
	if err != nil {
		writeError(w, "trends", err)
		return
	}
	writeJSON(w, trends)
}

func (handler *Handler) HandleReminders(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders")
	defer span.End()

	banners, err := handler.reminders.Banners(ctx)
	if err != nil {
		writeError(w, "reminders", err)
		return
	}
	writeJSON(w, banners)
}
