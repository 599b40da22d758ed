package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"village-admin-service/internal/error/code"
	"village-admin-service/internal/error/response"
)

// tokenBucket is a simple per-key limiter refilled continuously
type tokenBucket struct {
	rate       float64
	capacity   int
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(rate float64, capacity int) *tokenBucket {
	return &tokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow takes one token if available
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

// RateLimiterConfig controls the per-client request budget
type RateLimiterConfig struct {
	Rate       float64
	Burst      int
	ExpiryTime time.Duration
}

// DefaultRateLimiterConfig allows short bursts from form-filling clients
// without letting a single host hammer the API
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       20,
	Burst:      40,
	ExpiryTime: 1 * time.Hour,
}

type limiterRegistry struct {
	mu       sync.RWMutex
	limiters map[string]*tokenBucket
}

func (r *limiterRegistry) get(key string, cfg RateLimiterConfig) *tokenBucket {
	r.mu.RLock()
	limiter, exists := r.limiters[key]
	r.mu.RUnlock()
	if exists {
		return limiter
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if limiter, exists = r.limiters[key]; exists {
		return limiter
	}
	limiter = newTokenBucket(cfg.Rate, cfg.Burst)
	r.limiters[key] = limiter

	if cfg.ExpiryTime > 0 {
		go func() {
			time.Sleep(cfg.ExpiryTime)
			r.mu.Lock()
			delete(r.limiters, key)
			r.mu.Unlock()
		}()
	}
	return limiter
}

var ipLimiters = &limiterRegistry{limiters: make(map[string]*tokenBucket)}

// RateLimiter rejects requests from clients exceeding their budget with a
// 429 envelope
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	cfg := DefaultRateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}

	return func(c *gin.Context) {
		limiter := ipLimiters.get(c.ClientIP(), cfg)
		if !limiter.allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "too many requests, slow down", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IPRateLimiter builds a limiter with an explicit per-IP budget
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:  rate,
		Burst: burst,
	})
}
