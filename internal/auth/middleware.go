package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/durangezer/portfolio-api/internal/models"
	pkghttp "github.com/durangezer/portfolio-api/pkg/http"
)

// contextKey is a custom type for context keys
type contextKey string

const (
	// AdminContextKey is the key for storing admin claims in context
	AdminContextKey contextKey = "admin"
)

// AdminOnly validates the bearer token and injects admin claims into the
// request context. Expired and invalid tokens both surface as 401 to the
// caller but are distinguished in logs.
func AdminOnly(tm *TokenManager, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				pkghttp.WriteUnauthorized(w, "Authorization required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				pkghttp.WriteUnauthorized(w, "Invalid authorization header format")
				return
			}

			claims, err := tm.Validate(parts[1])
			if err != nil {
				if errors.Is(err, models.ErrTokenExpired) {
					logger.Info("rejected expired admin token")
					pkghttp.WriteUnauthorized(w, "Token expired")
				} else {
					logger.Info("rejected invalid admin token")
					pkghttp.WriteUnauthorized(w, "Invalid token")
				}
				return
			}

			ctx := context.WithValue(r.Context(), AdminContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminFromContext extracts admin claims from request context
func GetAdminFromContext(r *http.Request) *models.AdminClaims {
	claims, ok := r.Context().Value(AdminContextKey).(*models.AdminClaims)
	if !ok {
		return nil
	}
	return claims
}
