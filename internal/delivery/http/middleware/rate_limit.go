package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware keeps one token bucket per client IP. Buckets idle for
// longer than idleTTL are dropped on the next sweep.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	r        rate.Limit
	b        int

	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type ipLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewRateLimitMiddleware(reqPerSec float64, burst int) *RateLimitMiddleware {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitMiddleware{
		limiters: make(map[string]*ipLimiter),
		r:        rate.Limit(reqPerSec),
		b:        burst,
		idleTTL:  10 * time.Minute,
		now:      time.Now,
	}
}

func (m *RateLimitMiddleware) limiterFor(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) > m.idleTTL {
		for k, l := range m.limiters {
			if now.Sub(l.lastSeen) > m.idleTTL {
				delete(m.limiters, k)
			}
		}
		m.lastSweep = now
	}

	if l, ok := m.limiters[ip]; ok {
		l.lastSeen = now
		return l.lim
	}
	l := &ipLimiter{lim: rate.NewLimiter(m.r, m.b), lastSeen: now}
	m.limiters[ip] = l
	return l.lim
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m == nil || m.r <= 0 {
			return c.Next()
		}
		if !m.limiterFor(c.IP()).AllowN(m.now(), 1) {
			c.Set(fiber.HeaderRetryAfter, "1")
			return NewAppError(fiber.StatusTooManyRequests, "Too many requests", nil)
		}
		return c.Next()
	}
}
