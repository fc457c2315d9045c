package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"mvp_studio_go/models"
	"mvp_studio_go/services"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// PerMinute is the sustained number of requests allowed per key
	PerMinute int
	// Burst is the maximum burst size (defaults to PerMinute)
	Burst int
	// KeyFunc returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
	// Message is the error returned when the limit is exceeded
	Message string
}

// rateLimitEntry tracks a per-key token bucket and its last use
type rateLimitEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-endpoint rate limiter
type RateLimiter struct {
	config RateLimitConfig
	store  map[string]*rateLimitEntry
	mu     sync.Mutex
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.PerMinute <= 0 {
		config.PerMinute = 5
	}
	if config.Burst <= 0 {
		config.Burst = config.PerMinute
	}
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = services.MsgRateLimited
	}

	rl := &RateLimiter{
		config: config,
		store:  make(map[string]*rateLimitEntry),
	}

	// Start cleanup goroutine
	go rl.cleanup()

	return rl
}

// Middleware returns the rate limiting middleware. An exceeded limit
// yields the same 429 JSON body the submission pipeline uses for a
// provider rate limit.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.Allow(rl.config.KeyFunc(c)) {
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{Error: rl.config.Message})
			}
			return next(c)
		}
	}
}

// Allow reports whether a request for the given key fits the budget.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	entry, exists := rl.store[key]
	if !exists {
		entry = &rateLimitEntry{
			limiter: rate.NewLimiter(rate.Limit(float64(rl.config.PerMinute)/60.0), rl.config.Burst),
		}
		rl.store[key] = entry
	}
	entry.lastSeen = time.Now()
	rl.mu.Unlock()

	return entry.limiter.Allow()
}

// cleanup removes idle entries every minute
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-3 * time.Minute)
		for key, entry := range rl.store {
			if entry.lastSeen.Before(cutoff) {
				delete(rl.store, key)
			}
		}
		rl.mu.Unlock()
	}
}
