package auth

import (
	"chatterbox/domain"
	"context"
	"strings"
)

type contextKey string

const UserIDKey contextKey = "user_id"

func WithUserID(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// UserIDFromContext returns the authenticated identity injected by the middleware or interceptors.
func UserIDFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(UserIDKey).(domain.Identity)
	return id, ok && id != ""
}

// BearerToken extracts the token of a "Bearer <token>" header value.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
