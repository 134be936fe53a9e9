// Package dashboard feeds the adherence engine with the user's stored data and
// keeps the computed reports fresh for the dashboard page.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fittrack/internal/adherence"
	"github.com/2beens/fittrack/internal/history"
	"github.com/2beens/fittrack/internal/routines"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	reportCacheExpire   = 30 // seconds
	recentSessionsLimit = 5
	minutesPerExercise  = 3
	minEstimatedMinutes = 20
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

type sessionsRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]history.Session, error)
}

type routinesRepo interface {
	GetActiveRoutine(ctx context.Context, userID uuid.UUID) (*routines.Routine, error)
	ListTrainingDays(ctx context.Context, routineID uuid.UUID) ([]routines.TrainingDay, error)
	ListExercises(ctx context.Context, dayIDs []uuid.UUID) ([]routines.Exercise, error)
}

type ActiveRoutine struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	TotalWeeks int       `json:"totalWeeks"`
}

type NextWorkout struct {
	adherence.TrainingDay
	ExerciseCount    int `json:"exerciseCount"`
	EstimatedMinutes int `json:"estimatedMinutes"`
}

// Dashboard is everything the dashboard page shows, computed for one day.
type Dashboard struct {
	Today adherence.Date `json:"today"`
	adherence.Report
	ActiveRoutine  *ActiveRoutine          `json:"activeRoutine"`
	NextWorkout    *NextWorkout            `json:"nextWorkout"`
	Week           []adherence.ScheduleDay `json:"week"`
	RecentSessions []history.Session       `json:"recentSessions"`
}

type Service struct {
	sessions       sessionsRepo
	routines       routinesRepo
	cache          *freecache.Cache
	metricsManager *metrics.Manager

	// bumped by Invalidate; a report computed across a bump is not cached
	genMu       sync.Mutex
	generations map[uuid.UUID]uint64
}

func NewService(sessionsStore sessionsRepo, routinesStore routinesRepo, cacheSizeMB int, metricsManager *metrics.Manager) *Service {
	megabyte := 1024 * 1024
	return &Service{
		sessions:       sessionsStore,
		routines:       routinesStore,
		cache:          freecache.NewCache(cacheSizeMB * megabyte),
		metricsManager: metricsManager,
		generations:    make(map[uuid.UUID]uint64),
	}
}

// Report returns the user's dashboard for today, from the cache when a fresh
// entry for the same day exists.
func (s *Service) Report(ctx context.Context, userID uuid.UUID, today adherence.Date) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.service.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID.String()),
		attribute.String("today", today.String()),
	)

	generation := s.generation(userID)
	if cached, ok := s.cached(userID, today); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	start := time.Now()
	dashboard, err := s.compute(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterAdherenceReports.Inc()
		s.metricsManager.HistogramReportDuration.Observe(time.Since(start).Seconds())
	}

	dashboardBytes, err := json.Marshal(dashboard)
	if err != nil {
		log.Errorf("marshal dashboard for cache: %s", err)
		return dashboard, nil
	}
	s.store(userID, generation, dashboardBytes)

	return dashboard, nil
}

// Invalidate drops the user's cached report, the next Report call recomputes it.
// Reports already being computed for the user are not cached anymore.
func (s *Service) Invalidate(userID uuid.UUID) {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	s.generations[userID]++
	s.cache.Del(cacheKey(userID))
}

func (s *Service) generation(userID uuid.UUID) uint64 {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.generations[userID]
}

func (s *Service) store(userID uuid.UUID, generation uint64, dashboardBytes []byte) {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	if s.generations[userID] != generation {
		log.Tracef("dashboard of %s invalidated while computing, not cached", userID)
		return
	}
	if err := s.cache.Set(cacheKey(userID), dashboardBytes, reportCacheExpire); err != nil {
		log.Errorf("failed to cache dashboard for %s: %s", userID, err)
	}
}

func (s *Service) cached(userID uuid.UUID, today adherence.Date) (*Dashboard, bool) {
	dashboardBytes, err := s.cache.Get(cacheKey(userID))
	if err != nil {
		s.countCache("miss")
		return nil, false
	}

	var dashboard Dashboard
	if err := json.Unmarshal(dashboardBytes, &dashboard); err != nil {
		log.Errorf("unmarshal cached dashboard for %s: %s", userID, err)
		s.countCache("miss")
		return nil, false
	}
	// computed for another day, e.g. just after midnight
	if dashboard.Today != today {
		s.countCache("stale")
		return nil, false
	}

	s.countCache("hit")
	return &dashboard, true
}

func (s *Service) countCache(result string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterReportCache.WithLabelValues(result).Inc()
	}
}

func (s *Service) compute(ctx context.Context, userID uuid.UUID, today adherence.Date) (*Dashboard, error) {
	sessions, err := s.sessions.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	dashboard := &Dashboard{
		Today:          today,
		RecentSessions: sessions[:min(len(sessions), recentSessionsLimit)],
	}
	if dashboard.RecentSessions == nil {
		dashboard.RecentSessions = []history.Session{}
	}

	var days []routines.TrainingDay
	routine, err := s.routines.GetActiveRoutine(ctx, userID)
	switch {
	case errors.Is(err, routines.ErrRoutineNotFound):
		log.Tracef("user %s has no active routine", userID)
	case err != nil:
		return nil, fmt.Errorf("get active routine: %w", err)
	default:
		days, err = s.routines.ListTrainingDays(ctx, routine.ID)
		if err != nil {
			return nil, fmt.Errorf("list training days: %w", err)
		}
		if days == nil {
			days = []routines.TrainingDay{}
		}
		dashboard.ActiveRoutine = &ActiveRoutine{
			ID:         routine.ID,
			Name:       routine.Name,
			TotalWeeks: routine.TotalWeeks,
		}
	}

	engineSessions := history.AdherenceSessions(sessions)
	engineDays := routines.AdherenceDays(days)

	dashboard.Report = adherence.Compute(engineSessions, engineDays, today)
	dashboard.Week = adherence.WeekSchedule(engineSessions, engineDays, adherence.FirstWeek(engineDays), today)

	next, ok := adherence.NextTrainingDay(engineDays, today)
	if !ok {
		return dashboard, nil
	}
	nextID, err := uuid.Parse(next.ID)
	if err != nil {
		return nil, fmt.Errorf("parse next training day id: %w", err)
	}
	exercises, err := s.routines.ListExercises(ctx, []uuid.UUID{nextID})
	if err != nil {
		return nil, fmt.Errorf("list next workout exercises: %w", err)
	}
	dashboard.NextWorkout = &NextWorkout{
		TrainingDay:      next,
		ExerciseCount:    len(exercises),
		EstimatedMinutes: max(len(exercises)*minutesPerExercise, minEstimatedMinutes),
	}

	return dashboard, nil
}

func cacheKey(userID uuid.UUID) []byte {
	return []byte("report::" + userID.String())
}
