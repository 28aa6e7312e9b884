package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterPruneThreshold = 10000
	limiterIdleTTL        = 10 * time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UserLimiter keys token buckets by authenticated user, falling back to the client IP.
type UserLimiter struct {
	limiters map[string]*limiterEntry
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

func NewUserRateLimiter(r rate.Limit, b int) *UserLimiter {
	return &UserLimiter{
		limiters: make(map[string]*limiterEntry),
		r:        r,
		b:        b,
	}
}

func (u *UserLimiter) getLimiter(key string, now time.Time) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	entry, exists := u.limiters[key]
	if !exists {
		if len(u.limiters) >= limiterPruneThreshold {
			u.pruneLocked(now)
		}
		entry = &limiterEntry{limiter: rate.NewLimiter(u.r, u.b)}
		u.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

func (u *UserLimiter) pruneLocked(now time.Time) {
	for key, entry := range u.limiters {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(u.limiters, key)
		}
	}
}

func limiterKey(r *http.Request) string {
	if userID, ok := GetUserID(r.Context()); ok {
		return "user:" + userID
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ip:" + ip
}

func RateLimitMiddleware(limiter *UserLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.getLimiter(limiterKey(r), time.Now()).Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
