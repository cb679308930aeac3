package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/exam-site-backend/internal/config"
	"github.com/stemsi/exam-site-backend/internal/response"
)

// Limiter decides whether one more request for key fits in the budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit returns a Gin middleware that rate-limits requests by client IP.
// Limiter errors let the request through.
func RateLimit(l Limiter, log zerolog.Logger) gin.HandlerFunc {
	log = log.With().Str("component", "rate_limit").Logger()

	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Str("ip", c.ClientIP()).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if !ok {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

// RateLimiter implements a simple per-IP token bucket rate limiter.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     int           // Tokens per interval
	interval time.Duration // Refill interval
	now      func() time.Time
	stop     chan struct{}
}

type visitor struct {
	tokens   int
	lastSeen time.Time
}

// NewRateLimiter creates a RateLimiter (e.g., 10 requests per minute).
// Call Stop to end the background cleanup.
func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		interval: interval,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stop:
				return
			}
		}
	}()

	return rl
}

// Allow takes one token from key's bucket.
func (rl *RateLimiter) Allow(_ context.Context, key string) (bool, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{tokens: rl.rate, lastSeen: now}
		rl.visitors[key] = v
	}

	// Refill tokens based on elapsed time.
	refill := int(now.Sub(v.lastSeen)/rl.interval) * rl.rate
	if refill > 0 {
		v.tokens = min(v.tokens+refill, rl.rate)
		v.lastSeen = now
	}

	if v.tokens <= 0 {
		return false, nil
	}
	v.tokens--
	return true, nil
}

// Stop ends the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.visitors {
		if rl.now().Sub(v.lastSeen) > 3*rl.interval {
			delete(rl.visitors, ip)
		}
	}
}

// RedisRateLimiter is a fixed-window counter shared by every replica.
type RedisRateLimiter struct {
	rdb    *redis.Client
	rate   int
	window time.Duration
	now    func() time.Time
}

func NewRedisRateLimiter(rdb *redis.Client, rate int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{rdb: rdb, rate: rate, window: window, now: time.Now}
}

// Allow increments key's counter for the current window.
func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	start := rl.now().Truncate(rl.window).Unix()
	redisKey := config.CacheKey.RateLimitKey(key, start)

	var incr *redis.IntCmd
	_, err := rl.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, rl.window)
		return nil
	})
	if err != nil {
		return false, err
	}
	return incr.Val() <= int64(rl.rate), nil
}
