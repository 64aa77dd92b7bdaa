package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	cleanupThreshold = 500
	maxIdleAge       = 10 * time.Minute
)

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimiter keeps one token bucket per caller. Callers are keyed by
// identity subject when authenticated, otherwise by IP.
type ClientRateLimiter struct {
	clients map[string]*clientEntry
	mu      sync.Mutex
	r       rate.Limit
	b       int
}

func NewClientRateLimiter(r rate.Limit, b int) *ClientRateLimiter {
	return &ClientRateLimiter{
		clients: make(map[string]*clientEntry),
		r:       r,
		b:       b,
	}
}

// PerMinute builds a limiter that allows n requests per minute with a burst of n.
func PerMinute(n int) *ClientRateLimiter {
	if n <= 0 {
		return NewClientRateLimiter(rate.Inf, 0)
	}
	return NewClientRateLimiter(rate.Every(time.Minute/time.Duration(n)), n)
}

func (l *ClientRateLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.clients) > cleanupThreshold {
		cutoff := time.Now().Add(-maxIdleAge)
		for k, e := range l.clients {
			if e.lastSeen.Before(cutoff) {
				delete(l.clients, k)
			}
		}
	}

	e, exists := l.clients[key]
	if !exists {
		e = &clientEntry{limiter: rate.NewLimiter(l.r, l.b)}
		l.clients[key] = e
	}
	e.lastSeen = time.Now()
	return e.limiter
}

func RateLimit(limiter *ClientRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			if !limiter.GetLimiter(key).Allow() {
				w.Header().Set("Retry-After", "60")
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if identity, err := GetIdentityFromContext(r.Context()); err == nil {
		return "sub:" + identity.Subject
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ip:" + ip
}
