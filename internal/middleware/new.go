package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"dealership-assistant/config"
	"dealership-assistant/pkg/log"
	"dealership-assistant/pkg/response"
)

// Middleware bundles the cross-cutting HTTP concerns.
type Middleware struct {
	l   log.Logger
	cfg config.RateLimitConfig

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New creates the middleware set.
func New(l log.Logger, cfg config.RateLimitConfig) *Middleware {
	return &Middleware{
		l:        l,
		cfg:      cfg,
		limiters: make(map[string]*rate.Limiter),
	}
}

// RateLimit enforces a per-client token bucket keyed by client IP.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiterFor(c.ClientIP()).Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *Middleware) limiterFor(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if lim, ok := m.limiters[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Limit(m.cfg.RequestsPerSecond), m.cfg.Burst)
	m.limiters[key] = lim
	return lim
}
