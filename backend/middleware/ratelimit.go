package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/pairdraw/pairdraw/backend/utils"
)

// RateLimiter implements a sliding-window in-memory rate limiter. The
// per-client windows live in a bounded LRU, so a scan of many source
// addresses evicts stale windows instead of growing without limit.
type RateLimiter struct {
	windows *lru.Cache
	mutex   sync.Mutex
	window  time.Duration
	limit   int
}

const rateLimiterCacheSize = 4096

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	cache, _ := lru.New(rateLimiterCacheSize)
	return &RateLimiter{
		windows: cache,
		window:  window,
		limit:   limit,
	}
}

// Allow checks if a request from key should be allowed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	var requests []time.Time
	if cached, ok := rl.windows.Get(key); ok {
		for _, req := range cached.([]time.Time) {
			if req.After(cutoff) {
				requests = append(requests, req)
			}
		}
	}

	if len(requests) >= rl.limit {
		rl.windows.Add(key, requests)
		return false
	}

	rl.windows.Add(key, append(requests, now))
	return true
}

// RateLimitMiddleware rejects clients that exceed the request budget.
func RateLimitMiddleware(limit int, window time.Duration) fiber.Handler {
	limiter := NewRateLimiter(limit, window)

	return func(c *fiber.Ctx) error {
		if !limiter.Allow(utils.GetIPAddress(c)) {
			return utils.SendError(c, fiber.StatusTooManyRequests,
				"RATE_LIMITED", "too many requests, slow down", nil)
		}
		return c.Next()
	}
}
