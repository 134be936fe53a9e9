package profile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const MaxAvatarSize = 5 * 1024 * 1024

var (
	ErrAvatarNotFound    = errors.New("avatar not found")
	ErrAvatarTooLarge    = errors.New("avatar too large")
	ErrUnsupportedAvatar = errors.New("unsupported avatar image type")
)

var avatarExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// AvatarDiskStore keeps one avatar image per user in a flat directory,
// named after the user id.
type AvatarDiskStore struct {
	rootPath string
	mutex    sync.Mutex
}

func NewAvatarDiskStore(rootPath string) (*AvatarDiskStore, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}
	exists, err := pkg.PathExists(rootPath, true)
	if err != nil {
		return nil, fmt.Errorf("check avatars dir: %w", err)
	}
	if !exists {
		log.Debugf("creating avatars dir: %s", rootPath)
		if err := os.MkdirAll(rootPath, 0o755); err != nil {
			return nil, fmt.Errorf("create avatars dir: %w", err)
		}
	}
	return &AvatarDiskStore{
		rootPath: rootPath,
	}, nil
}

// Save writes the image read from src as the user's avatar, replacing the
// previous one. The image type is sniffed from the content, the returned
// file name carries the matching extension.
func (s *AvatarDiskStore) Save(ctx context.Context, userID uuid.UUID, src io.Reader) (_ string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "avatarStore.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	data, err := io.ReadAll(io.LimitReader(src, MaxAvatarSize+1))
	if err != nil {
		return "", fmt.Errorf("read avatar: %w", err)
	}
	if len(data) > MaxAvatarSize {
		return "", ErrAvatarTooLarge
	}

	contentType := http.DetectContentType(data)
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAvatar, contentType)
	}
	span.SetAttributes(
		attribute.String("avatar.type", contentType),
		attribute.Int("avatar.size", len(data)),
	)

	fileName := userID.String() + ext

	s.mutex.Lock()
	defer s.mutex.Unlock()

	// write aside first, a failed upload keeps the old avatar
	tmp, err := os.CreateTemp(s.rootPath, ".upload-*")
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			if removeErr := os.Remove(tmp.Name()); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
				log.Errorf("remove temp avatar %s: %s", tmp.Name(), removeErr)
			}
		}
	}()

	if _, err = io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write avatar: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close avatar: %w", err)
	}
	if err = os.Rename(tmp.Name(), filepath.Join(s.rootPath, fileName)); err != nil {
		return "", fmt.Errorf("move avatar in place: %w", err)
	}

	// an avatar of another type is now stale
	for _, otherExt := range avatarExtensions {
		if otherExt == ext {
			continue
		}
		stale := filepath.Join(s.rootPath, userID.String()+otherExt)
		if removeErr := os.Remove(stale); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
			log.Errorf("remove stale avatar %s: %s", stale, removeErr)
		}
	}

	log.Debugf("avatar store: saved %s (%d bytes)", fileName, len(data))
	return fileName, nil
}

// Open returns the avatar file content and its modification time.
func (s *AvatarDiskStore) Open(ctx context.Context, fileName string) (io.ReadSeekCloser, time.Time, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "avatarStore.open")
	defer span.End()

	// only names produced by Save are served
	if fileName != filepath.Base(fileName) || strings.HasPrefix(fileName, ".") {
		return nil, time.Time{}, ErrAvatarNotFound
	}

	f, err := os.Open(filepath.Join(s.rootPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, time.Time{}, ErrAvatarNotFound
		}
		return nil, time.Time{}, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, time.Time{}, err
	}

	return f, info.ModTime(), nil
}
