package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	h "eventmanager/internal/delivery/http/helpers"
)

// Recover turns a handler panic into a logged 500.
func Recover(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.ErrorContext(r.Context(), "panic recovered",
				"path", r.URL.Path,
				"method", r.Method,
				"panic", rec,
				"request_id", RequestIDFromContext(r.Context()),
				"stack", string(debug.Stack()),
			)
			h.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
