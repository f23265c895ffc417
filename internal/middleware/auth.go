package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/bookshelf/bookshelf/internal/auth"
)

// AuthConfig holds configuration for the access guard middleware.
type AuthConfig struct {
	Logger   *slog.Logger
	Verifier auth.Verifier
}

// Auth returns a middleware that guards routes behind a verified identity.
// It extracts the bearer token from the Authorization header, delegates
// verification to the identity verifier and binds the verified account
// email into the request context. Every guarded request re-verifies; no
// caching of verification results.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "missing_token"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w)
				return
			}

			email, err := cfg.Verifier.Verify(r.Context(), token)
			if err != nil {
				// Verifier failures are not distinguished to the caller.
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "invalid_token"),
					slog.String("error", err.Error()),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w)
				return
			}

			ctx := auth.ContextWithEmail(r.Context(), email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken returns the token from "Authorization: Bearer <token>",
// or an empty string when the header is absent or malformed.
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// writeAuthError writes a 401 Unauthorized response.
// Uses the same body for all auth failures.
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"Unauthorized Access!"}`))
}
