package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventmanager/internal/domain"
)

// ErrorStatus maps a service error to an HTTP status and a client-facing message.
// Unknown errors become 500 with a generic message so store details do not leak.
func ErrorStatus(err error) (int, string) {
	var derr *domain.DomainError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if errors.As(err, &derr) {
			return http.StatusNotFound, derr.Error()
		}
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrInvalidInput):
		if errors.As(err, &derr) {
			return http.StatusBadRequest, derr.Error()
		}
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

// WriteServiceError writes err as a JSON error. 5xx errors are logged with the request context.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, msg := ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	WriteJSONError(w, status, msg)
}
