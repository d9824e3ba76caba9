package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/laundry-service/internal/persistence"
)

// RateLimiter applies a fixed-window per-IP limit backed by Redis. A nil
// limiter, or one without a Redis client, passes every request through.
type RateLimiter struct {
	redis  *persistence.Redis
	logger *zap.Logger
	prefix string
	limit  int
	window time.Duration
}

// NewRateLimiter builds a limiter. Returns nil when redis is not configured.
func NewRateLimiter(redis *persistence.Redis, logger *zap.Logger, prefix string, limit int, window time.Duration) *RateLimiter {
	if redis == nil || limit <= 0 {
		return nil
	}
	return &RateLimiter{redis: redis, logger: logger, prefix: prefix, limit: limit, window: window}
}

// Handle enforces the limit. Counting errors fail open: an unreachable Redis
// must not take the auth routes down with it.
func (r *RateLimiter) Handle(c *fiber.Ctx) error {
	if r == nil || r.redis == nil {
		return c.Next()
	}

	ctx := context.Background()
	key := fmt.Sprintf("%s:%s", r.prefix, c.IP())
	count, err := r.redis.Client.Incr(ctx, key).Result()
	if err != nil {
		r.logger.Warn("rate limiter unavailable", zap.Error(err))
		return c.Next()
	}
	if count == 1 {
		r.redis.Client.Expire(ctx, key, r.window)
	}
	if count > int64(r.limit) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many requests"})
	}
	return c.Next()
}
