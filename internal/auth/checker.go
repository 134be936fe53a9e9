package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

var _ Checker = (*Service)(nil)

// Checker resolves session tokens, used by the auth middleware.
type Checker interface {
	SessionUserID(ctx context.Context, token string) (uuid.UUID, error)
}

type userIDKey struct{}

func ContextWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

// TokenFromRequest reads the session token from "Authorization: Bearer <token>".
// EventSource clients cannot set headers, so the token query param is accepted as well.
func TokenFromRequest(r *http.Request) string {
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return r.URL.Query().Get("token")
}
