package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	h "eventmanager/internal/delivery/http/helpers"

	"golang.org/x/time/rate"
)

// limiterTTL is how long an idle client's limiter is kept.
const limiterTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiterStore struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	rps       rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newLimiterStore(rps float64, burst int) *limiterStore {
	return &limiterStore{
		limiters: make(map[string]*limiterEntry),
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

func (s *limiterStore) limiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) > limiterTTL {
		for k, e := range s.limiters {
			if now.Sub(e.lastSeen) > limiterTTL {
				delete(s.limiters, k)
			}
		}
		s.lastSweep = now
	}
	if e, ok := s.limiters[key]; ok {
		e.lastSeen = now
		return e.limiter
	}
	l := rate.NewLimiter(s.rps, s.burst)
	s.limiters[key] = &limiterEntry{limiter: l, lastSeen: now}
	return l
}

// RateLimit applies a token bucket per client IP. rps <= 0 disables limiting.
// Rejected requests get 429 with Retry-After.
func RateLimit(rps float64, burst int, next http.Handler) http.Handler {
	if rps <= 0 {
		return next
	}
	if burst < 1 {
		burst = 1
	}
	store := newLimiterStore(rps, burst)
	retryAfter := strconv.Itoa(max(1, int(1/rps)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !store.limiter(clientIP(r)).Allow() {
			w.Header().Set("Retry-After", retryAfter)
			h.WriteJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
