package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/PradeepKumarReddy-098/pioneer/internal/auth"
	"github.com/PradeepKumarReddy-098/pioneer/internal/metrics"
)

// unauthorizedBody is the response for every authentication failure.
// A single message for all failure modes avoids leaking whether the
// header was missing, malformed, or carried a bad signature.
const unauthorizedBody = `{"message":"Invalid JWT Token. Unauthorized, Login to get access"}`

// AuthConfig holds configuration for the bearer-token middleware.
type AuthConfig struct {
	Logger  *slog.Logger
	Tokens  *auth.TokenService
	Metrics metrics.Recorder
}

// BearerAuth returns a middleware that authenticates requests with a
// JWT bearer token. On success the caller identity is injected into the
// request context; on any failure the request is rejected with 401.
func BearerAuth(cfg AuthConfig) func(http.Handler) http.Handler {
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)

			claims, err := cfg.Tokens.Verify(token)
			if err != nil {
				reason := "invalid_token"
				if token == "" {
					reason = "missing_token"
				}
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", reason),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				recorder.IncAuthRejected()
				writeAuthError(w)
				return
			}

			ctx := auth.ContextWithIdentity(r.Context(), &auth.Identity{
				Username: claims.Username,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken pulls the token segment out of the Authorization
// header. A missing header or a header without a second segment yields
// the empty string.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// writeAuthError writes a 401 Unauthorized response.
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(unauthorizedBody))
}
