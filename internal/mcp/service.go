package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/adherence"
	"github.com/2beens/fittrack/internal/dashboard"
	"github.com/2beens/fittrack/internal/history"

	"github.com/google/uuid"
)

// reportBuilder computes the dashboard report for one user and day.
type reportBuilder interface {
	Report(ctx context.Context, userID uuid.UUID, today adherence.Date) (*dashboard.Dashboard, error)
}

// sessionsRepo provides the stored workout history of a user.
type sessionsRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]history.Session, error)
}

// contextService gives the tools read-only access to the training data.
// Used by Handler for testability.
type contextService interface {
	AdherenceReport(ctx context.Context, userID uuid.UUID, today adherence.Date) (*dashboard.Dashboard, error)
	WorkoutHistory(ctx context.Context, userID uuid.UUID, params history.FilterParams, today adherence.Date) (*WorkoutHistory, error)
	Today() adherence.Date
}

// WorkoutHistory is the filtered history plus the summary of the whole history.
type WorkoutHistory struct {
	Sessions []history.Session `json:"sessions"`
	Total    int               `json:"total"`
	Summary  history.Summary   `json:"summary"`
}

// ContextService holds the stores the tools read from.
type ContextService struct {
	reports  reportBuilder
	sessions sessionsRepo
	location *time.Location
}

// NewContextService builds a ContextService. Days are resolved in loc when
// the caller does not pass one.
func NewContextService(reports reportBuilder, sessions sessionsRepo, loc *time.Location) *ContextService {
	if loc == nil {
		loc = time.Local
	}
	return &ContextService{
		reports:  reports,
		sessions: sessions,
		location: loc,
	}
}

func (s *ContextService) Today() adherence.Date {
	return adherence.Today(s.location)
}

func (s *ContextService) AdherenceReport(ctx context.Context, userID uuid.UUID, today adherence.Date) (*dashboard.Dashboard, error) {
	return s.reports.Report(ctx, userID, today)
}

func (s *ContextService) WorkoutHistory(
	ctx context.Context,
	userID uuid.UUID,
	params history.FilterParams,
	today adherence.Date,
) (*WorkoutHistory, error) {
	sessions, err := s.sessions.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return &WorkoutHistory{
		Sessions: history.Filter(sessions, params, today),
		Total:    len(sessions),
		Summary:  history.Summarize(sessions, today),
	}, nil
}
