package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

type contextKey string

const (
	subjectKey   contextKey = "subject"
	requestIDKey contextKey = "request_id"
)

// SetSubject returns a context with the token subject set. Used by auth middleware.
func SetSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext returns the authenticated token subject from the context, if present.
func SubjectFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey).(string)
	return s, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the subject in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
// A nil verifier disables the check.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if verifier == nil {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, "missing token")
				return
			}
			subject, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetSubject(r.Context(), subject))
			next(w, r)
		}
	}
}
