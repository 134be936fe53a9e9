package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/fittrack/internal/adherence"
	"github.com/2beens/fittrack/internal/history"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// AdherenceReportInput is the input for get_adherence_report.
type AdherenceReportInput struct {
	UserID string `json:"user_id" jsonschema:"User id (UUID)"`
	Today  string `json:"today,omitempty" jsonschema:"The user's current day (YYYY-MM-DD), defaults to the server's day"`
}

// GetAdherenceReportTool returns the MCP tool handler for get_adherence_report.
func (h *Handler) GetAdherenceReportTool() func(context.Context, *mcp.CallToolRequest, AdherenceReportInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AdherenceReportInput) (*mcp.CallToolResult, any, error) {
		userID, err := uuid.Parse(in.UserID)
		if err != nil {
			return errorResult("Invalid user_id: use a UUID"), nil, nil
		}
		today, ok := h.parseToday(in.Today)
		if !ok {
			return errorResult("Invalid today: use YYYY-MM-DD"), nil, nil
		}

		report, err := h.service.AdherenceReport(ctx, userID, today)
		if err != nil {
			return errorResult("Error computing adherence report: " + err.Error()), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

// WorkoutHistoryInput is the input for list_workout_history.
type WorkoutHistoryInput struct {
	UserID string `json:"user_id" jsonschema:"User id (UUID)"`
	Period string `json:"period,omitempty" jsonschema:"One of week, month, year or all (default all)"`
	Query  string `json:"query,omitempty" jsonschema:"Case insensitive filter on the workout name"`
}

// ListWorkoutHistoryTool returns the MCP tool handler for list_workout_history.
func (h *Handler) ListWorkoutHistoryTool() func(context.Context, *mcp.CallToolRequest, WorkoutHistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutHistoryInput) (*mcp.CallToolResult, any, error) {
		userID, err := uuid.Parse(in.UserID)
		if err != nil {
			return errorResult("Invalid user_id: use a UUID"), nil, nil
		}
		period, ok := history.ParsePeriod(in.Period)
		if !ok {
			return errorResult("Invalid period: use week, month, year or all"), nil, nil
		}

		params := history.FilterParams{
			Query:  in.Query,
			Period: period,
			SortBy: history.SortDateDesc,
		}
		list, err := h.service.WorkoutHistory(ctx, userID, params, h.service.Today())
		if err != nil {
			return errorResult("Error listing workout history: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func (h *Handler) parseToday(s string) (adherence.Date, bool) {
	if s == "" {
		return h.service.Today(), true
	}
	today, err := adherence.ParseDate(s)
	if err != nil {
		return adherence.Date{}, false
	}
	return today, true
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

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
