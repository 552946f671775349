package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	h "eventpoll/internal/delivery/http/helpers"
)

// idleLimiterTTL is how long a caller's bucket survives without requests.
const idleLimiterTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per caller. Callers are identified by the
// authenticated user ID, falling back to the client IP.
type RateLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	entries   map[string]*limiterEntry
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter allows perSecond requests per caller with bursts of up to burst.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		entries: make(map[string]*limiterEntry),
		now:     time.Now,
	}
}

// Wrap rejects requests over the caller's budget with 429 and a Retry-After header.
// It must run after RequireAuth so the user ID is in the context.
func (l *RateLimiter) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := UserIDFromContext(r.Context())
		if !ok {
			key = clientIP(r)
		}
		lim := l.get(key)
		if !lim.Allow() {
			retry := time.Second
			if l.limit > 0 {
				retry = time.Duration(float64(time.Second) / float64(l.limit))
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(retry.Round(time.Second)/time.Second)+1))
			h.WriteJSONError(w, http.StatusTooManyRequests, h.ErrCodeRateLimited, "too many requests, slow down")
			return
		}
		next(w, r)
	}
}

func (l *RateLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.lastSweep) > idleLimiterTTL {
		for k, e := range l.entries {
			if now.Sub(e.lastSeen) > idleLimiterTTL {
				delete(l.entries, k)
			}
		}
		l.lastSweep = now
	}
	e, ok := l.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
