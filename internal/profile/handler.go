package profile

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// multipart overhead on top of the image itself
const maxAvatarRequestSize = MaxAvatarSize + 64*1024

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, p Profile) (*Profile, error)
	SetAvatarFile(ctx context.Context, userID uuid.UUID, avatarFile string) error
}

type avatarStore interface {
	Save(ctx context.Context, userID uuid.UUID, src io.Reader) (string, error)
	Open(ctx context.Context, fileName string) (io.ReadSeekCloser, time.Time, error)
}

type Handler struct {
	repo    profileRepo
	avatars avatarStore
}

func NewHandler(repo profileRepo, avatars avatarStore) *Handler {
	return &Handler{
		repo:    repo,
		avatars: avatars,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	router.HandleFunc("", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")
	router.HandleFunc("/avatar", handler.HandleUploadAvatar).Methods("POST", "OPTIONS").Name("upload-avatar")
	router.HandleFunc("/avatar", handler.HandleGetAvatar).Methods("GET", "OPTIONS").Name("get-avatar")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, err := handler.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile %s: %s", userID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, p)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}
	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Tracef("unmarshal profile: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p.UserID = userID
	if err := p.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := handler.repo.Upsert(ctx, p)
	if err != nil {
		log.Errorf("upsert profile %s: %s", userID, err)
		http.Error(w, "failed to save profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, updated)
}

// HandleUploadAvatar takes the image from the "avatar" field of a multipart form.
func (handler *Handler) HandleUploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.upload-avatar")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarRequestSize)
	if err := r.ParseMultipartForm(maxAvatarRequestSize); err != nil {
		log.Debugf("upload avatar, parse multipart form: %s", err)
		http.Error(w, "invalid form or file too big", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Errorf("upload avatar, remove multipart files: %s", err)
		}
	}()

	file, _, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, "error, avatar file missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileName, err := handler.avatars.Save(ctx, userID, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrAvatarTooLarge):
			http.Error(w, "avatar too large, max 5MB", http.StatusRequestEntityTooLarge)
		case errors.Is(err, ErrUnsupportedAvatar):
			http.Error(w, "unsupported image, use png, jpeg or webp", http.StatusUnsupportedMediaType)
		default:
			log.Errorf("save avatar for %s: %s", userID, err)
			http.Error(w, "failed to save avatar", http.StatusInternalServerError)
		}
		return
	}

	if err := handler.repo.SetAvatarFile(ctx, userID, fileName); err != nil {
		log.Errorf("set avatar file for %s: %s", userID, err)
		http.Error(w, "failed to save avatar", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, map[string]string{"avatar": "/profile/avatar"}, http.StatusCreated)
}

func (handler *Handler) HandleGetAvatar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get-avatar")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, err := handler.repo.Get(ctx, userID)
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		log.Errorf("get profile %s: %s", userID, err)
		http.Error(w, "failed to get avatar", http.StatusInternalServerError)
		return
	}
	if p == nil || p.AvatarFile == "" {
		http.NotFound(w, r)
		return
	}

	avatar, modTime, err := handler.avatars.Open(ctx, p.AvatarFile)
	if err != nil {
		if errors.Is(err, ErrAvatarNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Errorf("open avatar %s: %s", p.AvatarFile, err)
		http.Error(w, "failed to get avatar", http.StatusInternalServerError)
		return
	}
	defer avatar.Close()

	http.ServeContent(w, r, p.AvatarFile, modTime, avatar)
}
