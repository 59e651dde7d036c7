package middleware

import "context"

type contextKey string

const (
	cartSessionKey contextKey = "cart_session_id"
	userIDKey      contextKey = "user_id"
	bearerTokenKey contextKey = "bearer_token"
)

// CartSessionFromContext returns the cart session id attached by
// CartSession, or empty.
func CartSessionFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(cartSessionKey).(string); ok {
		return v
	}
	return ""
}

// UserIDFromContext returns the authenticated user id, or empty for
// guests.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// BearerTokenFromContext returns the raw bearer token for upstream
// pass-through, or empty.
func BearerTokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(bearerTokenKey).(string); ok {
		return v
	}
	return ""
}
