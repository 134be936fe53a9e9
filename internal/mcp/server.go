package mcp

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the MCP server with read-only adherence tools. Both the
// stdio command and tests use it.
func NewServer(reports reportBuilder, sessions sessionsRepo, loc *time.Location) *mcp.Server {
	h := NewHandler(NewContextService(reports, sessions, loc))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fittrack-adherence",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_adherence_report",
		Description: "Returns the adherence report of a user for a day: current and longest streak, weekly completed vs planned workouts, last workout date, the active routine, the next workout and the current week schedule. Args: user_id; optional: today (YYYY-MM-DD) when the user's day differs from the server's.",
	}, h.GetAdherenceReportTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workout_history",
		Description: "Returns the completed workouts of a user, newest first, with a summary (totals, average duration, completion rate, streaks). Args: user_id; optional: period (week, month, year, all), query (filter by workout name).",
	}, h.ListWorkoutHistoryTool())

	return s
}
