package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kioskhub/dashboard/backend/internal/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// RateLimiter is a fixed-window counter kept in Redis.
type RateLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
	now    func() time.Time
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		config: config,
		now:    time.Now,
	}
}

// NewGenerateRateLimiter limits list regeneration per household per hour.
func NewGenerateRateLimiter(redisClient *redis.Client, perHour int) *RateLimiter {
	return NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Hour,
		Limit:     perHour,
		KeyPrefix: "rate_limit:shopping_generate",
	})
}

// Limit is the number of requests allowed per window.
func (rl *RateLimiter) Limit() int { return rl.config.Limit }

// Window is the length of one counting window.
func (rl *RateLimiter) Window() time.Duration { return rl.config.Window }

func (rl *RateLimiter) window() (string, time.Time) {
	start := rl.now().Truncate(rl.config.Window)
	return strconv.FormatInt(start.Unix(), 10), start.Add(rl.config.Window)
}

func (rl *RateLimiter) key(subject, window string) string {
	return fmt.Sprintf("%s:%s:%s", rl.config.KeyPrefix, subject, window)
}

// IsAllowed counts a request from subject.
// Returns: allowed, remaining requests, reset time, error
func (rl *RateLimiter) IsAllowed(ctx context.Context, subject string) (bool, int, time.Time, error) {
	window, reset := rl.window()
	key := rl.key(subject, window)

	pipe := rl.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incr.Val())
	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= rl.config.Limit, remaining, reset, nil
}

// GetRemainingRequests returns the number of remaining requests for subject
// without counting one.
func (rl *RateLimiter) GetRemainingRequests(ctx context.Context, subject string) (int, time.Time, error) {
	window, reset := rl.window()

	count, err := rl.redis.Get(ctx, rl.key(subject, window)).Int()
	if err == redis.Nil {
		return rl.config.Limit, reset, nil
	}
	if err != nil {
		return 0, time.Time{}, err
	}

	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, reset, nil
}

// PerHousehold enforces the limit per :household path parameter. Redis
// failures let the request through.
func (rl *RateLimiter) PerHousehold() gin.HandlerFunc {
	return func(c *gin.Context) {
		household := c.Param("household")
		allowed, remaining, reset, err := rl.IsAllowed(c.Request.Context(), household)
		if err != nil {
			logger.Named("ratelimit").Warn("rate limit check failed", zap.String("household", household), zap.Error(err))
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("at most %d list generations per %v", rl.config.Limit, rl.config.Window),
				"retry_after": int(reset.Sub(rl.now()).Seconds()),
			})
			return
		}
		c.Next()
	}
}
