package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// idleAfter is how long an IP may stay quiet before its limiter is dropped.
const idleAfter = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds a map of IP addresses to their rate limiters.
type rateLimiterStore struct {
	limiters  map[string]*limiterEntry
	mu        sync.Mutex
	every     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newRateLimiterStore(perMinute int) *rateLimiterStore {
	if perMinute <= 0 {
		perMinute = 200
	}
	return &rateLimiterStore{
		limiters:  make(map[string]*limiterEntry),
		every:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     perMinute,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
// Idle entries are swept at most once per idleAfter.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= idleAfter {
		for key, e := range s.limiters {
			if now.Sub(e.lastSeen) >= idleAfter {
				delete(s.limiters, key)
			}
		}
		s.lastSweep = now
	}

	e, exists := s.limiters[ip]
	if !exists {
		e = &limiterEntry{limiter: rate.NewLimiter(s.every, s.burst)}
		s.limiters[ip] = e
	}
	e.lastSeen = now
	return e.limiter
}

// RateLimitMiddleware limits requests per IP address to perMinute, with a
// burst of the same size.
func RateLimitMiddleware(perMinute int) gin.HandlerFunc {
	store := newRateLimiterStore(perMinute)
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !store.getLimiter(ip).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
