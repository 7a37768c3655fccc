package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/2beens/liftlog/internal/progress"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type progressService interface {
	GetProgress(ctx context.Context, userID, exerciseName string, limit int) ([]progress.WorkoutStat, error)
	Resolve(ctx context.Context, userID, query string) (*progress.ResolveResult, error)
	ExerciseNames(ctx context.Context, userID string) ([]string, error)
}

// Handler turns MCP tool calls into progress service calls.
type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func serviceErrorResult(prefix string, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, progress.ErrInvalidInput):
		return errorResult(prefix + ": " + err.Error())
	case errors.Is(err, progress.ErrUserNotFound):
		return errorResult(prefix + ": user not found")
	default:
		return errorResult(prefix + ": storage unavailable, try again later")
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// ExerciseNamesInput is the input for list_exercise_names.
type ExerciseNamesInput struct {
	UserID string `json:"user_id" jsonschema:"ID of the user"`
}

func (h *Handler) ListExerciseNamesTool() func(context.Context, *mcp.CallToolRequest, ExerciseNamesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseNamesInput) (*mcp.CallToolResult, any, error) {
		names, err := h.service.ExerciseNames(ctx, in.UserID)
		if err != nil {
			return serviceErrorResult("Error listing exercise names", err), nil, nil
		}
		return jsonResult(names), nil, nil
	}
}

// ExerciseProgressInput is the input for get_exercise_progress.
type ExerciseProgressInput struct {
	UserID       string `json:"user_id" jsonschema:"ID of the user"`
	ExerciseName string `json:"exercise_name" jsonschema:"Exact exercise name, case does not matter (e.g. Bench Press)"`
	Limit        int    `json:"limit,omitempty" jsonschema:"Number of most recent workouts, default 10, max 100"`
}

func (h *Handler) GetExerciseProgressTool() func(context.Context, *mcp.CallToolRequest, ExerciseProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseProgressInput) (*mcp.CallToolResult, any, error) {
		stats, err := h.service.GetProgress(ctx, in.UserID, in.ExerciseName, in.Limit)
		if err != nil {
			return serviceErrorResult("Error fetching exercise progress", err), nil, nil
		}
		return jsonResult(stats), nil, nil
	}
}

// SearchProgressInput is the input for search_exercise_progress.
type SearchProgressInput struct {
	UserID string `json:"user_id" jsonschema:"ID of the user"`
	Query  string `json:"query" jsonschema:"Free text exercise name, abbreviations like bp, ohp, dl work too"`
}

func (h *Handler) SearchExerciseProgressTool() func(context.Context, *mcp.CallToolRequest, SearchProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SearchProgressInput) (*mcp.CallToolResult, any, error) {
		result, err := h.service.Resolve(ctx, in.UserID, in.Query)
		if err != nil {
			return serviceErrorResult("Error searching exercise progress", err), nil, nil
		}
		return jsonResult(result), nil, nil
	}
}
