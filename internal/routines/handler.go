package routines

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/importer"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const maxImportBodySize = 1 << 20

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=routines_test

type routinesRepo interface {
	ListRoutines(ctx context.Context, userID uuid.UUID) ([]Routine, error)
	GetRoutine(ctx context.Context, id, userID uuid.UUID) (*Routine, error)
	GetActiveRoutine(ctx context.Context, userID uuid.UUID) (*Routine, error)
	AddRoutine(ctx context.Context, routine Routine) (*Routine, error)
	UpdateRoutine(ctx context.Context, routine Routine) error
	DeleteRoutine(ctx context.Context, id, userID uuid.UUID) error
	SetActiveRoutine(ctx context.Context, id, userID uuid.UUID) error
	ListTrainingDays(ctx context.Context, routineID uuid.UUID) ([]TrainingDay, error)
	GetTrainingDay(ctx context.Context, id, userID uuid.UUID) (*TrainingDay, error)
	AddTrainingDay(ctx context.Context, day TrainingDay) (*TrainingDay, error)
	DeleteTrainingDay(ctx context.Context, id, userID uuid.UUID) error
	ListExercises(ctx context.Context, dayIDs []uuid.UUID) ([]Exercise, error)
	AddExercises(ctx context.Context, exercises []Exercise) ([]Exercise, error)
	UpdateExercise(ctx context.Context, exercise Exercise, userID uuid.UUID) error
	DeleteExercise(ctx context.Context, id, userID uuid.UUID) error
}

type changeNotifier interface {
	PublishRoutineChanged(ctx context.Context, userID uuid.UUID) error
}

type Handler struct {
	repo           routinesRepo
	notifier       changeNotifier
	metricsManager *metrics.Manager
}

func NewHandler(repo routinesRepo, notifier changeNotifier, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		notifier:       notifier,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	routinesRouter := router.PathPrefix("/routines").Subrouter()
	routinesRouter.HandleFunc("", handler.HandleListRoutines).Methods("GET", "OPTIONS").Name("list-routines")
	routinesRouter.HandleFunc("", handler.HandleAddRoutine).Methods("POST", "OPTIONS").Name("add-routine")
	routinesRouter.HandleFunc("/active", handler.HandleGetActiveRoutine).Methods("GET", "OPTIONS").Name("active-routine")
	routinesRouter.HandleFunc("/{id}", handler.HandleGetRoutine).Methods("GET", "OPTIONS").Name("get-routine")
	routinesRouter.HandleFunc("/{id}", handler.HandleUpdateRoutine).Methods("PUT", "OPTIONS").Name("update-routine")
	routinesRouter.HandleFunc("/{id}", handler.HandleDeleteRoutine).Methods("DELETE", "OPTIONS").Name("delete-routine")
	routinesRouter.HandleFunc("/{id}/activate", handler.HandleActivateRoutine).Methods("POST", "OPTIONS").Name("activate-routine")
	routinesRouter.HandleFunc("/{id}/days", handler.HandleListDays).Methods("GET", "OPTIONS").Name("list-days")
	routinesRouter.HandleFunc("/{id}/days", handler.HandleAddDay).Methods("POST", "OPTIONS").Name("add-day")

	daysRouter := router.PathPrefix("/days").Subrouter()
	daysRouter.HandleFunc("/{id}", handler.HandleDeleteDay).Methods("DELETE", "OPTIONS").Name("delete-day")
	daysRouter.HandleFunc("/{id}/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	daysRouter.HandleFunc("/{id}/exercises", handler.HandleAddExercises).Methods("POST", "OPTIONS").Name("add-exercises")
	daysRouter.HandleFunc("/{id}/exercises/import", handler.HandleImportExercises).Methods("POST", "OPTIONS").Name("import-exercises")

	exercisesRouter := router.PathPrefix("/exercises").Subrouter()
	exercisesRouter.HandleFunc("/{id}", handler.HandleUpdateExercise).Methods("PUT", "OPTIONS").Name("update-exercise")
	exercisesRouter.HandleFunc("/{id}", handler.HandleDeleteExercise).Methods("DELETE", "OPTIONS").Name("delete-exercise")
}

func requestUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
	}
	return userID, ok
}

func idVar(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Tracef("unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// replyRepoError maps the package errors to HTTP statuses.
func replyRepoError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, ErrRoutineNotFound):
		http.Error(w, "routine not found", http.StatusNotFound)
	case errors.Is(err, ErrDayNotFound):
		http.Error(w, "training day not found", http.StatusNotFound)
	case errors.Is(err, ErrExerciseNotFound):
		http.Error(w, "exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidRoutine), errors.Is(err, ErrInvalidDay), errors.Is(err, ErrInvalidExercise):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, "failed to "+action, http.StatusInternalServerError)
	}
}

func (handler *Handler) routineChanged(ctx context.Context, userID uuid.UUID) {
	if handler.notifier == nil {
		return
	}
	if err := handler.notifier.PublishRoutineChanged(ctx, userID); err != nil {
		log.Errorf("publish routine changed for %s: %s", userID, err)
	}
}

func (handler *Handler) HandleListRoutines(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	routines, err := handler.repo.ListRoutines(ctx, userID)
	if err != nil {
		replyRepoError(w, "list routines", err)
		return
	}
	if routines == nil {
		routines = []Routine{}
	}

	pkg.WriteJSONResponseOK(w, routines)
}

func (handler *Handler) HandleAddRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.add")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var routine Routine
	if !decodeJSON(w, r, &routine) {
		return
	}
	routine.UserID = userID
	if routine.TotalWeeks == 0 {
		routine.TotalWeeks = 1
	}
	if err := routine.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddRoutine(ctx, routine)
	if err != nil {
		replyRepoError(w, "add routine", err)
		return
	}

	log.Debugf("new routine added: %s [%s]", added.ID, added.Name)
	pkg.WriteJSONResponse(w, added, http.StatusCreated)
}

// HandleGetActiveRoutine replies with the active routine and its days, or null.
func (handler *Handler) HandleGetActiveRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get-active")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	routine, err := handler.repo.GetActiveRoutine(ctx, userID)
	if errors.Is(err, ErrRoutineNotFound) {
		pkg.WriteJSONResponseOK(w, nil)
		return
	}
	if err != nil {
		replyRepoError(w, "get active routine", err)
		return
	}

	details, err := handler.routineDetails(ctx, *routine)
	if err != nil {
		replyRepoError(w, "get active routine", err)
		return
	}

	pkg.WriteJSONResponseOK(w, details)
}

func (handler *Handler) HandleGetRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := idVar(w, r)
	if !ok {
		return
	}

	routine, err := handler.repo.GetRoutine(ctx, id, userID)
	if err != nil {
		replyRepoError(w, "get routine", err)
		return
	}

	details, err := handler.routineDetails(ctx, *routine)
	if err != nil {
		replyRepoError(w, "get routine", err)
		return
	}

	pkg.WriteJSONResponseOK(w, details)
}

func (handler *Handler) routineDetails(ctx context.Context, routine Routine) (*RoutineDetails, error) {
	days, err := handler.repo.ListTrainingDays(ctx, routine.ID)
	if err != nil {
		return nil, err
	}

	dayIDs := make([]uuid.UUID, 0, len(days))
	for _, d := range days {
		dayIDs = append(dayIDs, d.ID)
	}
	exercises, err := handler.repo.ListExercises(ctx, dayIDs)
	if err != nil {
		return nil, err
	}

	return &RoutineDetails{
		Routine: routine,
		Days:    GroupExercises(days, exercises),
	}, nil
}

func (handler *Handler) HandleUpdateRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.update")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := idVar(w, r)
	if !ok {
		return
	}

	var routine Routine
	if !decodeJSON(w, r, &routine) {
		return
	}
	routine.ID = id
	routine.UserID = userID
	if err := routine.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateRoutine(ctx, routine); err != nil {
		replyRepoError(w, "update routine", err)
		return
	}

	handler.routineChanged(ctx, userID)
	pkg.WriteJSONResponseOK(w, routine)
}

func (handler *Handler) HandleDeleteRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := idVar(w, r)
	if !ok {
		return
	}

	if err := handler.repo.DeleteRoutine(ctx, id, userID); err != nil {
		replyRepoError(w, "delete routine", err)
		return
	}

	handler.routineChanged(ctx, userID)
	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleActivateRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.activate")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := idVar(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("routine.id", id.String()))

	if err := handler.repo.SetActiveRoutine(ctx, id, userID); err != nil {
		replyRepoError(w, "activate routine", err)
		return
	}

	handler.routineChanged(ctx, userID)
	pkg.WriteTextResponseOK(w, "activated")
}

func (handler *Handler) HandleListDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list-days")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := idVar(w, r)
	if !ok {
		return
	}

	if _, err := handler.repo.GetRoutine(ctx, id, userID); err != nil {
		replyRepoError(w, "list training days", err)
		return
	}

	days, err := handler.repo.ListTrainingDays(ctx, id)
	if err != nil {
		replyRepoError(w, "list training days", err)
		return
	}
	if days == nil {
		days = []TrainingDay{}
	}

	pkg.WriteJSONResponseOK(w, days)
}

func (handler *Handler) HandleAddDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.add-day")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	routineID, ok := idVar(w, r)
	if !ok {
		return
	}

	var day TrainingDay
	if !decodeJSON(w, r, &day) {
		return
	}

	routine, err := handler.repo.GetRoutine(ctx, routineID, userID)
	if err != nil {
		replyRepoError(w, "add training day", err)
		return
	}

	day.RoutineID = routine.ID
	if day.WeekNumber == 0 {
		day.WeekNumber = 1
	}
	if day.IsRestDay && day.Name == "" {
		day.Name = DefaultRestDayName
	}
	if err := day.Validate(routine.TotalWeeks); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddTrainingDay(ctx, day)
	if err != nil {
		replyRepoError(w, "add training day", err)
		return
	}

	if routine.IsActive {
		handler.routineChanged(ctx, userID)
	}
	pkg.WriteJSONResponse(w, added, http.StatusCreated)
}

func (handler *Handler) HandleDeleteDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete-day")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := idVar(w, r)
	if !ok {
		return
	}

	if err := handler.repo.DeleteTrainingDay(ctx, id, userID); err != nil {
		replyRepoError(w, "delete training day", err)
		return
	}

	handler.routineChanged(ctx, userID)
	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list-exercises")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	dayID, ok := idVar(w, r)
	if !ok {
		return
	}

	if _, err := handler.repo.GetTrainingDay(ctx, dayID, userID); err != nil {
		replyRepoError(w, "list exercises", err)
		return
	}

	exercises, err := handler.repo.ListExercises(ctx, []uuid.UUID{dayID})
	if err != nil {
		replyRepoError(w, "list exercises", err)
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	pkg.WriteJSONResponseOK(w, exercises)
}

// HandleAddExercises accepts a single exercise or a list of them.
func (handler *Handler) HandleAddExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.add-exercises")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	dayID, ok := idVar(w, r)
	if !ok {
		return
	}

	var raw json.RawMessage
	if !decodeJSON(w, r, &raw) {
		return
	}
	var exercises []Exercise
	if err := json.Unmarshal(raw, &exercises); err != nil {
		var single Exercise
		if err := json.Unmarshal(raw, &single); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		exercises = []Exercise{single}
	}
	if len(exercises) == 0 {
		http.Error(w, "error, no exercises given", http.StatusBadRequest)
		return
	}

	for i := range exercises {
		exercises[i].DayID = dayID
		if exercises[i].Order == 0 {
			exercises[i].Order = i + 1
		}
		if err := exercises[i].Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	handler.addExercises(ctx, w, userID, dayID, exercises)
}

// HandleImportExercises parses a plain text program and adds the exercises to the day.
func (handler *Handler) HandleImportExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.import-exercises")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	dayID, ok := idVar(w, r)
	if !ok {
		return
	}

	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType != pkg.ContentType.Text {
		http.Error(w, "invalid content type, plain text expected", http.StatusBadRequest)
		return
	}

	text, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBodySize))
	if err != nil {
		http.Error(w, "failed to read import text", http.StatusBadRequest)
		return
	}

	drafts := importer.Parse(pkg.BytesToString(text))
	span.SetAttributes(attribute.Int("drafts.count", len(drafts)))
	if len(drafts) == 0 {
		http.Error(w, "no valid exercises found", http.StatusBadRequest)
		return
	}

	exercises := make([]Exercise, 0, len(drafts))
	for i, d := range drafts {
		exercises = append(exercises, ExerciseFromDraft(d, dayID, i))
	}

	if added := handler.addExercises(ctx, w, userID, dayID, exercises); added > 0 && handler.metricsManager != nil {
		handler.metricsManager.CounterExercisesImported.Add(float64(added))
	}
}

func (handler *Handler) addExercises(
	ctx context.Context,
	w http.ResponseWriter,
	userID, dayID uuid.UUID,
	exercises []Exercise,
) int {
	if _, err := handler.repo.GetTrainingDay(ctx, dayID, userID); err != nil {
		replyRepoError(w, "add exercises", err)
		return 0
	}

	added, err := handler.repo.AddExercises(ctx, exercises)
	if err != nil {
		replyRepoError(w, "add exercises", err)
		return 0
	}

	handler.routineChanged(ctx, userID)
	pkg.WriteJSONResponse(w, added, http.StatusCreated)
	return len(added)
}

func (handler *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.update-exercise")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := idVar(w, r)
	if !ok {
		return
	}

	var exercise Exercise
	if !decodeJSON(w, r, &exercise) {
		return
	}
	exercise.ID = id
	if err := exercise.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateExercise(ctx, exercise, userID); err != nil {
		replyRepoError(w, "update exercise", err)
		return
	}

	handler.routineChanged(ctx, userID)
	pkg.WriteJSONResponseOK(w, exercise)
}

func (handler *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete-exercise")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := idVar(w, r)
	if !ok {
		return
	}

	if err := handler.repo.DeleteExercise(ctx, id, userID); err != nil {
		replyRepoError(w, "delete exercise", err)
		return
	}

	handler.routineChanged(ctx, userID)
	pkg.WriteTextResponseOK(w, "deleted")
}
