package middleware

import (
	"log/slog"
	"sync"
	"time"

	"servicehub/config"
	"servicehub/internal/delivery/api/response"
	domainerrors "servicehub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 2
	defaultBurst             = 10
	defaultIdleTTL           = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	enabled  bool
	logger   *slog.Logger
	now      func() time.Time
}

// NewRateLimiter builds the limiter from the rateLimit config section.
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(defaultRequestsPerSecond),
		burst:    defaultBurst,
		idleTTL:  defaultIdleTTL,
		logger:   logger,
		now:      time.Now,
	}

	if cfg.RateLimit == nil {
		return rl
	}

	rl.enabled = cfg.RateLimit.Enabled
	if cfg.RateLimit.RequestsPerSecond > 0 {
		rl.limit = rate.Limit(cfg.RateLimit.RequestsPerSecond)
	}
	if cfg.RateLimit.Burst > 0 {
		rl.burst = cfg.RateLimit.Burst
	}
	if cfg.RateLimit.IdleTTL > 0 {
		rl.idleTTL = cfg.RateLimit.IdleTTL
	}

	return rl
}

// Limit answers 429 once the client IP has spent its burst.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		ip := c.RealIP()
		if !rl.allow(ip) {
			rl.logger.Warn("Rate limit exceeded", slog.String("remote_ip", ip), slog.String("path", c.Path()))

			return response.HandleAppError(c, domainerrors.ErrRateLimited)
		}

		return next(c)
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// Sweep drops buckets idle for longer than the configured TTL.
func (rl *RateLimiter) Sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idleTTL)
	removed := 0
	for key, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, key)
			removed++
		}
	}

	return removed
}

// RunSweeper calls Sweep every interval until stop is closed.
func (rl *RateLimiter) RunSweeper(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := rl.Sweep(); removed > 0 {
				rl.logger.Debug("Rate limiter swept idle clients", slog.Int("removed", removed))
			}
		case <-stop:
			return
		}
	}
}

// IdleTTL reports how long an unused bucket is kept.
func (rl *RateLimiter) IdleTTL() time.Duration {
	return rl.idleTTL
}
