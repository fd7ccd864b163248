package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventmanager/internal/delivery/http/controllers"
	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/delivery/http/middleware"
	"eventmanager/internal/delivery/http/pages"
	"eventmanager/internal/domain"
	"eventmanager/internal/metrics"

	httpSwagger "github.com/swaggo/http-swagger"
)

const healthTimeout = 2 * time.Second

// Services are the application services the router exposes.
type Services struct {
	Events       domain.EventService
	Participants domain.ParticipantService
	Speakers     domain.SpeakerService
	Vendors      domain.VendorService
	Feedback     domain.FeedbackService
}

// Options configures the middleware stack. Zero values disable the optional layers.
type Options struct {
	// Verifier guards API writes. Nil leaves the API open.
	Verifier       domain.TokenVerifier
	CSRFKey        []byte
	SecureCookies  bool
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Pinger reports database reachability for /healthz.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(logger *slog.Logger, svc Services, db Pinger, opts Options) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(opts.Verifier, logger)

	events := controllers.NewEventController(logger, svc.Events)
	mux.HandleFunc("GET /api/events", events.ListEvents)
	mux.HandleFunc("POST /api/events", auth(events.CreateEvent))
	mux.HandleFunc("GET /api/events/{eventID}", events.GetEvent)
	mux.HandleFunc("PATCH /api/events/{eventID}", auth(events.UpdateEvent))
	mux.HandleFunc("DELETE /api/events/{eventID}", auth(events.DeleteEvent))

	budget := controllers.NewBudgetController(logger, svc.Events)
	mux.HandleFunc("GET /api/budget", budget.GetBudget)
	mux.HandleFunc("POST /api/budget/adjust", auth(budget.AdjustBudget))
	mux.HandleFunc("PUT /api/budget", auth(budget.EditBudget))

	participants := controllers.NewParticipantController(logger, svc.Participants)
	mux.HandleFunc("POST /api/participants", auth(participants.RegisterParticipant))
	mux.HandleFunc("GET /api/participants", participants.ListParticipants)
	mux.HandleFunc("PATCH /api/participants/{id}", auth(participants.UpdateParticipant))
	mux.HandleFunc("DELETE /api/participants/{id}", auth(participants.DeleteParticipant))

	speakers := controllers.NewSpeakerController(logger, svc.Speakers)
	mux.HandleFunc("POST /api/speakers", auth(speakers.RegisterSpeaker))
	mux.HandleFunc("GET /api/speakers", speakers.ListSpeakers)
	mux.HandleFunc("PATCH /api/speakers/{id}", auth(speakers.UpdateSpeaker))
	mux.HandleFunc("DELETE /api/speakers/{id}", auth(speakers.DeleteSpeaker))

	vendors := controllers.NewVendorController(logger, svc.Vendors)
	mux.HandleFunc("POST /api/vendors", auth(vendors.RegisterVendor))
	mux.HandleFunc("GET /api/vendors", vendors.ListVendors)
	mux.HandleFunc("PATCH /api/vendors/{id}", auth(vendors.UpdateVendor))
	mux.HandleFunc("DELETE /api/vendors/{id}", auth(vendors.DeleteVendor))

	// Attendees leave feedback without a token.
	feedback := controllers.NewFeedbackController(logger, svc.Feedback)
	mux.HandleFunc("POST /api/feedback", feedback.AddFeedback)
	mux.HandleFunc("GET /api/feedback", feedback.ListFeedback)
	mux.HandleFunc("PATCH /api/feedback/{id}", auth(feedback.UpdateFeedback))
	mux.HandleFunc("DELETE /api/feedback/{id}", auth(feedback.DeleteFeedback))

	pages.NewHandler(logger, svc.Events, svc.Participants, svc.Speakers, svc.Vendors, svc.Feedback).Register(mux)

	mux.HandleFunc("GET /healthz", healthz(logger, db))
	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// Chain wraps the router with the middleware stack, outermost first: recovery, request id, logging, CORS and
// rate limiting for /api, CSRF for everything else, then metrics directly around the mux.
func Chain(logger *slog.Logger, mux *http.ServeMux, opts Options) http.Handler {
	var h http.Handler = metrics.HTTPMiddleware(mux)
	h = exceptAPI(middleware.CSRFProtection(opts.CSRFKey, opts.SecureCookies), h)
	h = onlyAPI(func(next http.Handler) http.Handler {
		return middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst, next)
	}, h)
	h = onlyAPI(func(next http.Handler) http.Handler {
		return middleware.CORS(opts.CORSOrigins, next)
	}, h)
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.RequestID(h)
	return middleware.Recover(logger, h)
}

func isAPI(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}

func onlyAPI(wrap func(http.Handler) http.Handler, next http.Handler) http.Handler {
	wrapped := wrap(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAPI(r) {
			wrapped.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func exceptAPI(wrap func(http.Handler) http.Handler, next http.Handler) http.Handler {
	wrapped := wrap(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAPI(r) {
			next.ServeHTTP(w, r)
			return
		}
		wrapped.ServeHTTP(w, r)
	})
}

// healthz reports 200 when the database answers a ping.
func healthz(logger *slog.Logger, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				logger.WarnContext(r.Context(), "health check failed", "err", err)
				helpers.WriteJSONError(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, helpers.MessageResponse{Message: "ok"})
	}
}
