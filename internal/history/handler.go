package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/adherence"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=history_test

type historyRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]Session, error)
	Record(ctx context.Context, session Session) (*Session, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DeleteForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	RecordFeedback(ctx context.Context, feedback Feedback) (*Feedback, error)
	ListFeedback(ctx context.Context, sessionID, userID uuid.UUID) ([]Feedback, error)
}

type completionNotifier interface {
	PublishWorkoutCompleted(ctx context.Context, userID uuid.UUID) error
}

type dayResolver interface {
	Today(r *http.Request) (adherence.Date, error)
}

// RecordRequest is a finished workout as sent by the workout execution screen.
// Date defaults to the caller's today. DurationSeconds is used when
// DurationMinutes is not set.
type RecordRequest struct {
	Date               *adherence.Date `json:"date,omitempty"`
	Name               string          `json:"name"`
	DurationMinutes    int             `json:"durationMinutes"`
	DurationSeconds    int             `json:"durationSeconds,omitempty"`
	ExercisesCompleted int             `json:"exercisesCompleted"`
	TotalExercises     int             `json:"totalExercises"`
}

type ListResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

type Handler struct {
	repo           historyRepo
	notifier       completionNotifier
	days           dayResolver
	metricsManager *metrics.Manager
}

func NewHandler(
	repo historyRepo,
	notifier completionNotifier,
	days dayResolver,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		notifier:       notifier,
		days:           days,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("list-history")
	router.HandleFunc("", handler.HandleRecord).Methods("POST", "OPTIONS").Name("record-workout")
	router.HandleFunc("", handler.HandleDeleteAll).Methods("DELETE", "OPTIONS").Name("clear-history")
	router.HandleFunc("/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("history-stats")
	router.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	router.HandleFunc("/{id}/feedback", handler.HandleAddFeedback).Methods("POST", "OPTIONS").Name("add-feedback")
	router.HandleFunc("/{id}/feedback", handler.HandleListFeedback).Methods("GET", "OPTIONS").Name("list-feedback")
}

func requestUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
	}
	return userID, ok
}

func sessionIDVar(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid workout id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func (handler *Handler) publishCompleted(ctx context.Context, userID uuid.UUID) {
	if handler.notifier == nil {
		return
	}
	if err := handler.notifier.PublishWorkoutCompleted(ctx, userID); err != nil {
		// the dashboard catches up on its next poll
		log.Errorf("publish workout completed for %s: %s", userID, err)
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.list")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	period, ok := ParsePeriod(r.URL.Query().Get("period"))
	if !ok {
		http.Error(w, "error, invalid period", http.StatusBadRequest)
		return
	}
	sortBy, ok := ParseSortBy(r.URL.Query().Get("sort"))
	if !ok {
		http.Error(w, "error, invalid sort", http.StatusBadRequest)
		return
	}
	today, err := handler.days.Today(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessions, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list history for %s: %s", userID, err)
		http.Error(w, "failed to get workout history", http.StatusInternalServerError)
		return
	}

	filtered := Filter(sessions, FilterParams{
		Query:  r.URL.Query().Get("query"),
		Period: period,
		SortBy: sortBy,
	}, today)
	span.SetAttributes(attribute.Int("sessions.filtered", len(filtered)))

	pkg.WriteJSONResponseOK(w, ListResponse{
		Sessions: filtered,
		Total:    len(sessions),
	})
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.stats")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	today, err := handler.days.Today(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessions, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("history stats for %s: %s", userID, err)
		http.Error(w, "failed to get workout history", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, Summarize(sessions, today))
}

func (handler *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.record")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("record workout, unmarshal json params: %s", err)
		http.Error(w, "record workout failed", http.StatusBadRequest)
		return
	}

	session := Session{
		UserID:             userID,
		Name:               req.Name,
		DurationMinutes:    req.DurationMinutes,
		ExercisesCompleted: req.ExercisesCompleted,
		TotalExercises:     req.TotalExercises,
	}
	if session.DurationMinutes == 0 && req.DurationSeconds > 0 {
		session.DurationMinutes = DurationMinutes(time.Duration(req.DurationSeconds) * time.Second)
	}
	if req.Date != nil {
		session.Date = *req.Date
	} else {
		today, err := handler.days.Today(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		session.Date = today
	}

	if err := session.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recorded, err := handler.repo.Record(ctx, session)
	if err != nil {
		log.Errorf("failed to record workout [%s] for %s: %s", session.Name, userID, err)
		http.Error(w, "error, failed to record workout", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterWorkoutsRecorded.Inc()
	}
	handler.publishCompleted(ctx, userID)

	log.Debugf("workout recorded: %s [%s]", recorded.ID, recorded.Date)
	pkg.WriteJSONResponse(w, recorded, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.delete")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := sessionIDVar(w, r)
	if !ok {
		return
	}

	err := handler.repo.Delete(ctx, id, userID)
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("delete workout %s: %s", id, err)
		http.Error(w, "failed to delete workout", http.StatusInternalServerError)
		return
	}

	handler.publishCompleted(ctx, userID)
	pkg.WriteJSONResponseOK(w, DeleteResponse{Deleted: 1})
}

func (handler *Handler) HandleDeleteAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.delete-all")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	deleted, err := handler.repo.DeleteForUser(ctx, userID)
	if err != nil {
		log.Errorf("clear history for %s: %s", userID, err)
		http.Error(w, "failed to clear workout history", http.StatusInternalServerError)
		return
	}

	log.Debugf("history cleared for %s, %d workouts deleted", userID, deleted)
	handler.publishCompleted(ctx, userID)
	pkg.WriteJSONResponseOK(w, DeleteResponse{Deleted: deleted})
}

func (handler *Handler) HandleAddFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.add-feedback")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	sessionID, ok := sessionIDVar(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var feedback Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		http.Error(w, "add feedback failed", http.StatusBadRequest)
		return
	}
	if err := feedback.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	feedback.SessionID = sessionID
	feedback.UserID = userID

	added, err := handler.repo.RecordFeedback(ctx, feedback)
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("add feedback for workout %s: %s", sessionID, err)
		http.Error(w, "failed to add feedback", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, added, http.StatusCreated)
}

func (handler *Handler) HandleListFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.list-feedback")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	sessionID, ok := sessionIDVar(w, r)
	if !ok {
		return
	}

	feedback, err := handler.repo.ListFeedback(ctx, sessionID, userID)
	if err != nil {
		log.Errorf("list feedback for workout %s: %s", sessionID, err)
		http.Error(w, "failed to get feedback", http.StatusInternalServerError)
		return
	}
	if feedback == nil {
		feedback = []Feedback{}
	}

	pkg.WriteJSONResponseOK(w, feedback)
}
