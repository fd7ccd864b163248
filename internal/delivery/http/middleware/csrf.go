package middleware

import (
	"net/http"

	"github.com/gorilla/csrf"
)

// CSRFProtection guards the form pages with gorilla/csrf's double-submit cookie. An empty key disables it.
// The JSON API is not wrapped; bearer tokens are not sent by browsers automatically.
func CSRFProtection(authKey []byte, secure bool) func(http.Handler) http.Handler {
	if len(authKey) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	protect := csrf.Protect(authKey,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(csrfErrorHandler)),
	)
	return func(next http.Handler) http.Handler {
		protected := protect(next)
		if secure {
			return protected
		}
		// Without TLS the Referer check must be told the request is plaintext.
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

func csrfErrorHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("Forbidden: the form has expired or was not submitted from this site. Reload the page and try again.\n"))
}
