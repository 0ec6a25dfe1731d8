package mcp

import (
	"net/http"

	"github.com/2beens/fittrack/internal/reminders"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/tracker"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with read-only fittrack tools: settings,
// plan, week plan, workout, streak, adherence, trends, reminders, exercise
// lookup and nutrition targets.
// Used over stdio by cmd/fittrack-mcp and over HTTP at /mcp by the service.
func NewServer(tr *tracker.Service, st *stats.Service, rem *reminders.Service) *mcp.Server {
	return newServer(NewHandler(NewContextService(tr, st, rem)))
}

func newServer(h *Handler) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fittrack",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_settings",
		Description: "Returns the user's settings: program mode (normal or ramadan), ramadan end date, daily step goal, weight and waist units, gym start day and reminder times.",
	}, h.GetSettingsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_plan",
		Description: "Returns the session scheduled for a date (default today): session name, type, whether it is a gym day, and its exercises with sets, reps and rest. Use when asked what to train on a day.",
	}, h.GetPlanTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_week_plan",
		Description: "Returns the seven resolved days of the training week containing a date (default today), starting from the configured gym start day.",
	}, h.GetWeekPlanTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout",
		Description: "Returns the logged workout session for a date (default today) and its exercise logs with every set. Errors when no workout was started that day.",
	}, h.GetWorkoutTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_streak",
		Description: "Returns the current and longest activity streak in days. A day counts when a workout was completed or the step goal was met.",
	}, h.GetStreakTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_adherence",
		Description: "Returns plan adherence: completed gym sessions and step goal days against the scheduled ones, for a rolling window of days (default from config) and for the current week.",
	}, h.GetAdherenceTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_trends",
		Description: "Returns the bodyweight and waist trends (last 30 days, in the user's units) and daily steps for the last 14 days.",
	}, h.GetTrendsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_reminders",
		Description: "Returns the reminder banners due right now (workout, steps, weigh-in), empty when notifications are off.",
	}, h.GetRemindersTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise",
		Description: "Returns one exercise from the library by id: target muscles, equipment, safety note and the replacements to use when it hurts or the machine is taken.",
	}, h.GetExerciseTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_nutrition_target",
		Description: "Returns the daily nutrition target for a mode (default the user's current mode): calorie, protein, carb, fat and water ranges plus suggested meals with timing.",
	}, h.GetNutritionTargetTool())

	return s
}

// NewHTTPHandler serves s over the streamable HTTP transport.
func NewHTTPHandler(s *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)
}
