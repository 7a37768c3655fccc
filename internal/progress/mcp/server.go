package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the progress tools. Mounted at /mcp by the
// main backend and served over stdio by cmd/progress_mcp.
func NewServer(service progressService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "liftlog-progress",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercise_names",
		Description: "Returns the distinct exercise names the user has ever logged. Arg: user_id. Use to see what can be asked about.",
	}, h.ListExerciseNamesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_progress",
		Description: "Returns per-workout stats (sets, max weight, total volume, estimated 1RM) for one exercise, most recent first. Args: user_id, exercise_name; optional: limit (default 10, max 100).",
	}, h.GetExerciseProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_exercise_progress",
		Description: "Fuzzy matches a free text query (e.g. bp, ohp, squats) against the user's exercise names and returns the best match, other close matches, and progress of the best match. Args: user_id, query.",
	}, h.SearchExerciseProgressTool())

	return s
}
