package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventmanager/internal/domain"
	"eventmanager/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type stubEvents struct {
	domain.EventService
	created int
}

func (s *stubEvents) List(context.Context) ([]*domain.EventRecord, error) {
	return []*domain.EventRecord{{ID: 1, Name: "Conf", DisplayName: "1: Conf"}}, nil
}

func (s *stubEvents) Create(_ context.Context, name, date string, budget int64) (*domain.EventRecord, error) {
	s.created++
	return &domain.EventRecord{ID: 2, Name: name, Date: date, Budget: budget}, nil
}

type stubFeedback struct{ domain.FeedbackService }

func (stubFeedback) Create(_ context.Context, eventID int64, content string) (*domain.FeedbackRecord, error) {
	return &domain.FeedbackRecord{ID: 1, EventID: eventID, Content: content}, nil
}

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (string, error) {
	if token == "good" {
		return "organizer", nil
	}
	return "", errors.New("bad token")
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func newTestHandler(events *stubEvents, db Pinger, opts Options) http.Handler {
	mux := NewRouter(testLogger, Services{Events: events, Feedback: stubFeedback{}}, db, opts)
	return Chain(testLogger, mux, opts)
}

func serve(h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Healthz(t *testing.T) {
	rr := serve(newTestHandler(&stubEvents{}, stubPinger{}, Options{}), http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"ok"}`, rr.Body.String())

	rr = serve(newTestHandler(&stubEvents{}, stubPinger{err: errors.New("down")}, Options{}), http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestRouter_AuthGuardsWrites(t *testing.T) {
	events := &stubEvents{}
	h := newTestHandler(events, nil, Options{Verifier: stubVerifier{}})
	body := `{"name":"Conf","date":"01-06-2025","budget":10}`

	rr := serve(h, http.MethodGet, "/api/events", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code, "reads are open")

	rr = serve(h, http.MethodPost, "/api/events", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(h, http.MethodPost, "/api/events", body, map[string]string{"Authorization": "Bearer nope"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(h, http.MethodPost, "/api/events", body, map[string]string{"Authorization": "Bearer good"})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 1, events.created)

	rr = serve(h, http.MethodPost, "/api/feedback", `{"event_id":1,"content":"Nice"}`, nil)
	assert.Equal(t, http.StatusCreated, rr.Code, "feedback needs no token")
}

func TestRouter_OpenWithoutVerifier(t *testing.T) {
	h := newTestHandler(&stubEvents{}, nil, Options{})
	rr := serve(h, http.MethodPost, "/api/events", `{"name":"Conf","date":"01-06-2025"}`, nil)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRouter_CSRFAppliesToPagesOnly(t *testing.T) {
	opts := Options{CSRFKey: []byte("12345678901234567890123456789012")}
	h := newTestHandler(&stubEvents{}, nil, opts)

	rr := serve(h, http.MethodPost, "/events/new", "name=Conf&date=01-06-2025", map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = serve(h, http.MethodPost, "/api/events", `{"name":"Conf","date":"01-06-2025"}`, nil)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(h, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "1: Conf")
}

func TestRouter_RateLimitsAPI(t *testing.T) {
	h := newTestHandler(&stubEvents{}, nil, Options{RateLimitRPS: 1, RateLimitBurst: 1})
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/events", "", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h, http.MethodGet, "/api/events", "", nil).Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/events", "", nil).Code, "pages are not limited")
}

func TestRouter_MetricsUseRoutePattern(t *testing.T) {
	h := newTestHandler(&stubEvents{}, nil, Options{})
	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "GET /api/events", "200"))
	serve(h, http.MethodGet, "/api/events", "", nil)
	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "GET /api/events", "200"))
	assert.Equal(t, before+1, after)

	rr := serve(h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "eventmanager_http_requests_total")
}

func TestRouter_UnknownRoute(t *testing.T) {
	h := newTestHandler(&stubEvents{}, nil, Options{})
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/api/nope", "", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(h, http.MethodPut, "/api/events", "", nil).Code)
}
