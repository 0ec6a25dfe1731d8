package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/calendar"
	"github.com/2beens/fittrack/internal/stats"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

// NewHandler builds a handler with the given service.
func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// DateInput is the input of the tools that look at a single date.
type DateInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), today when empty"`
}

func (in DateInput) validate() *mcp.CallToolResult {
	if in.Date != "" && !calendar.IsValidISO(in.Date) {
		return errorResult("Invalid date: use YYYY-MM-DD")
	}
	return nil
}

// AdherenceInput is the input for get_adherence.
type AdherenceInput struct {
	Days int `json:"days,omitempty" jsonschema:"Length of the rolling window in days, the configured lookback when 0"`
}

// ExerciseInput is the input for get_exercise.
type ExerciseInput struct {
	ID string `json:"id" jsonschema:"Exercise id as it appears in a plan, e.g. barbell-bench-press"`
}

// ModeInput is the input for get_nutrition_target.
type ModeInput struct {
	Mode string `json:"mode,omitempty" jsonschema:"Program mode (normal or ramadan), the user's current mode when empty"`
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// jsonResult renders v as indented JSON, or err as a tool error prefixed
// with what failed.
func jsonResult(what string, v any, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return errorResult("Error fetching " + what + ": " + apperr.Message(err)), nil, nil
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error()), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

// GetSettingsTool returns the MCP tool handler for get_settings.
func (h *Handler) GetSettingsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		settings, err := h.service.Settings(ctx)
		return jsonResult("settings", settings, err)
	}
}

// GetPlanTool returns the MCP tool handler for get_plan.
func (h *Handler) GetPlanTool() func(context.Context, *mcp.CallToolRequest, DateInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DateInput) (*mcp.CallToolResult, any, error) {
		if res := in.validate(); res != nil {
			return res, nil, nil
		}
		plan, err := h.service.Plan(ctx, in.Date)
		return jsonResult("plan", plan, err)
	}
}

// GetWeekPlanTool returns the MCP tool handler for get_week_plan.
func (h *Handler) GetWeekPlanTool() func(context.Context, *mcp.CallToolRequest, DateInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DateInput) (*mcp.CallToolResult, any, error) {
		if res := in.validate(); res != nil {
			return res, nil, nil
		}
		week, err := h.service.WeekPlan(ctx, in.Date)
		return jsonResult("week plan", week, err)
	}
}

// GetWorkoutTool returns the MCP tool handler for get_workout.
func (h *Handler) GetWorkoutTool() func(context.Context, *mcp.CallToolRequest, DateInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DateInput) (*mcp.CallToolResult, any, error) {
		if res := in.validate(); res != nil {
			return res, nil, nil
		}
		workout, err := h.service.Workout(ctx, in.Date)
		return jsonResult("workout", workout, err)
	}
}

// GetStreakTool returns the MCP tool handler for get_streak.
func (h *Handler) GetStreakTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		streak, err := h.service.Streak(ctx)
		return jsonResult("streak", streak, err)
	}
}

// GetAdherenceTool returns the MCP tool handler for get_adherence.
func (h *Handler) GetAdherenceTool() func(context.Context, *mcp.CallToolRequest, AdherenceInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AdherenceInput) (*mcp.CallToolResult, any, error) {
		if in.Days < 0 || in.Days > stats.MaxLookbackDays {
			return errorResult(fmt.Sprintf("Invalid days: must be between 0 and %d", stats.MaxLookbackDays)), nil, nil
		}
		adherence, err := h.service.Adherence(ctx, in.Days)
		return jsonResult("adherence", adherence, err)
	}
}

// GetTrendsTool returns the MCP tool handler for get_trends.
func (h *Handler) GetTrendsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		trends, err := h.service.Trends(ctx)
		return jsonResult("trends", trends, err)
	}
}

// GetRemindersTool returns the MCP tool handler for get_reminders.
func (h *Handler) GetRemindersTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		banners, err := h.service.Reminders(ctx)
		return jsonResult("reminders", banners, err)
	}
}

// GetExerciseTool returns the MCP tool handler for get_exercise.
func (h *Handler) GetExerciseTool() func(context.Context, *mcp.CallToolRequest, ExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseInput) (*mcp.CallToolResult, any, error) {
		id := strings.TrimSpace(in.ID)
		if id == "" {
			return errorResult("Missing exercise id"), nil, nil
		}
		exercise, err := h.service.Exercise(ctx, id)
		return jsonResult("exercise", exercise, err)
	}
}

// GetNutritionTargetTool returns the MCP tool handler for get_nutrition_target.
func (h *Handler) GetNutritionTargetTool() func(context.Context, *mcp.CallToolRequest, ModeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ModeInput) (*mcp.CallToolResult, any, error) {
		target, err := h.service.NutritionTarget(ctx, strings.ToLower(strings.TrimSpace(in.Mode)))
		return jsonResult("nutrition target", target, err)
	}
}
