package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/netyark/storefront-backend/pkg/config"
	"github.com/netyark/storefront-backend/pkg/logger"
)

// OptionalAuth parses a bearer token when one is present. Invalid or
// missing tokens fall through as guest: the upstream applies the same
// rule, so a bad token never blocks guest checkout.
func OptionalAuth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") || cfg.Secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			userID, err := parseUserID(raw, cfg)
			if err != nil {
				if logg != nil {
					logg.Warn(r.Context(), "invalid bearer token, proceeding as guest")
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, bearerTokenKey, raw)
			if logg != nil {
				ctx = logg.WithUserID(ctx, userID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type upstreamClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

func parseUserID(raw string, cfg config.JWTConfig) (string, error) {
	var claims upstreamClaims
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		return []byte(cfg.Secret), nil
	}, opts...)
	if err != nil {
		return "", err
	}
	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return userID, nil
}
