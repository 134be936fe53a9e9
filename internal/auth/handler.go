package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type identityService interface {
	SignUp(ctx context.Context, creds Credentials) (*User, error)
	SignIn(ctx context.Context, creds Credentials, createdAt time.Time) (string, error)
	SignOut(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*User, error)
}

type SignInResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

type Handler struct {
	service        identityService
	metricsManager *metrics.Manager
}

func NewHandler(service identityService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/signup", handler.HandleSignUp).Methods("POST", "OPTIONS").Name("sign-up")
	router.HandleFunc("/signin", handler.HandleSignIn).Methods("POST", "OPTIONS").Name("sign-in")
	router.HandleFunc("/signout", handler.HandleSignOut).Methods("POST", "OPTIONS").Name("sign-out")
	router.HandleFunc("/me", handler.HandleMe).Methods("GET", "OPTIONS").Name("current-user")
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (Credentials, bool) {
	var creds Credentials
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return creds, false
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Tracef("decode credentials: %s", err)
		http.Error(w, "invalid credentials payload", http.StatusBadRequest)
		return creds, false
	}
	if creds.Email == "" || creds.Password == "" {
		http.Error(w, "error, email or password empty", http.StatusBadRequest)
		return creds, false
	}
	return creds, true
}

func (handler *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.sign-up")
	defer span.End()

	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := handler.service.SignUp(ctx, creds)
	switch {
	case errors.Is(err, ErrInvalidCredential):
		http.Error(w, "invalid email, or password too short", http.StatusBadRequest)
		return
	case errors.Is(err, ErrUserExists):
		http.Error(w, "user already exists", http.StatusConflict)
		return
	case err != nil:
		log.Errorf("sign up %s: %s", creds.Email, err)
		http.Error(w, "sign up failed", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterSignUps.Inc()
	}
	log.Debugf("new user signed up: %s", user.ID)
	pkg.WriteJSONResponse(w, user, http.StatusCreated)
}

func (handler *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.sign-in")
	defer span.End()

	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := handler.service.SignIn(ctx, creds, time.Now())
	if errors.Is(err, ErrWrongCredentials) {
		http.Error(w, "wrong email or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Errorf("sign in %s: %s", creds.Email, err)
		http.Error(w, "sign in failed", http.StatusInternalServerError)
		return
	}

	user, err := handler.service.CurrentUser(ctx, token)
	if err != nil {
		// the token is valid anyway, the client can ask /auth/me again
		log.Errorf("sign in, get current user: %s", err)
	}

	pkg.WriteJSONResponseOK(w, SignInResponse{
		Token: token,
		User:  user,
	})
}

func (handler *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.sign-out")
	defer span.End()

	token := TokenFromRequest(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	err := handler.service.SignOut(ctx, token)
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Errorf("sign out: %s", err)
		http.Error(w, "sign out failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "signed out")
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.me")
	defer span.End()

	user, err := handler.service.CurrentUser(ctx, TokenFromRequest(r))
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrSessionExpired), errors.Is(err, ErrUserNotFound):
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return
	case err != nil:
		log.Errorf("get current user: %s", err)
		http.Error(w, "failed to get current user", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, user)
}
