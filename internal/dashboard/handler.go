package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
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
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type reportService interface {
	Report(ctx context.Context, userID uuid.UUID, today adherence.Date) (*Dashboard, error)
}

type streamHub interface {
	Subscribe(userID uuid.UUID) (<-chan struct{}, func())
}

type dayResolver interface {
	Today(r *http.Request) (adherence.Date, error)
}

type Handler struct {
	service        reportService
	hub            streamHub
	days           dayResolver
	pollInterval   time.Duration
	metricsManager *metrics.Manager
}

func NewHandler(
	service reportService,
	hub streamHub,
	days dayResolver,
	pollInterval time.Duration,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		service:        service,
		hub:            hub,
		days:           days,
		pollInterval:   pollInterval,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard", handler.HandleGet).Methods("GET", "OPTIONS").Name("dashboard")
	router.HandleFunc("/dashboard/stream", handler.HandleStream).Methods("GET").Name("dashboard-stream")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	today, err := handler.days.Today(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}

	dashboard, err := handler.service.Report(ctx, userID, today)
	if err != nil {
		log.Errorf("dashboard report for %s: %s", userID, err)
		http.Error(w, "failed to get dashboard", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, dashboard)
}

// HandleStream is a server-sent events stream of dashboard reports. A report is
// pushed on connect, on every poll tick, and whenever the user's data changes.
// Pushes are computed one after another, so the client always ends on the newest.
func (handler *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	// validate the day params before the stream starts
	if _, err := handler.days.Today(r); err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}

	rc := http.NewResponseController(w)
	// the server write timeout would cut the stream
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		log.Tracef("dashboard stream: clear write deadline: %s", err)
	}

	w.Header().Set("Content-Type", pkg.ContentType.EventStream)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	updates, unsubscribe := handler.hub.Subscribe(userID)
	defer unsubscribe()

	if handler.metricsManager != nil {
		handler.metricsManager.GaugeOpenStreams.Inc()
		defer handler.metricsManager.GaugeOpenStreams.Dec()
	}

	log.Debugf("dashboard stream opened for %s", userID)
	defer log.Debugf("dashboard stream closed for %s", userID)

	ticker := time.NewTicker(handler.pollInterval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return
		}
		if err := handler.push(ctx, w, rc, r, userID); err != nil {
			log.Debugf("dashboard stream for %s: %s", userID, err)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-updates:
		}
	}
}

// push writes one report event. Only write failures end the stream, a failed
// report computation is sent as an error event.
func (handler *Handler) push(
	ctx context.Context,
	w http.ResponseWriter,
	rc *http.ResponseController,
	r *http.Request,
	userID uuid.UUID,
) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "handler.dashboard.push")
	defer span.End()

	event, data := "report", []byte(nil)

	today, err := handler.days.Today(r)
	if err == nil {
		var dashboard *Dashboard
		if dashboard, err = handler.service.Report(ctx, userID, today); err == nil {
			data, err = json.Marshal(dashboard)
		}
	}
	if err != nil {
		log.Errorf("dashboard stream report for %s: %s", userID, err)
		event, data = "error", []byte("failed to get dashboard")
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	if err := rc.Flush(); err != nil {
		return fmt.Errorf("flush event: %w", err)
	}
	return nil
}
