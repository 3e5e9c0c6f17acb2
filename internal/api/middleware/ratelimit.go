package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/casetrack/case-management/internal/api/metrics"
)

// RateLimitConfig shapes one limiter. The auth endpoints run a tight window
// (brute-force protection); the rest of the API runs a generous one.
type RateLimitConfig struct {
	// Prefix namespaces the Redis keys so limiters do not share counters.
	Prefix string
	// Window is the counting period.
	Window time.Duration
	// Limit is the maximum number of requests per client IP per window.
	Limit int64
}

// RateLimit counts requests per client IP in Redis and rejects with 429 once
// the window's limit is exhausted. The counter is a plain INCR with an
// expiry set on first hit; when Redis is unreachable the limiter fails open
// so an infra outage never takes the API down with it.
func RateLimit(rdb *redis.Client, cfg RateLimitConfig, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			key := fmt.Sprintf("ratelimit:%s:%s", cfg.Prefix, ip)
			ctx := c.Request().Context()

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if count == 1 {
				if err := rdb.Expire(ctx, key, cfg.Window).Err(); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("failed to set rate limit window")
				}
			}

			remaining := cfg.Limit - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

			if count > cfg.Limit {
				retryAfter := int64(cfg.Window / time.Second)
				if ttl, err := rdb.TTL(ctx, key).Result(); err == nil && ttl > 0 {
					retryAfter = int64(ttl / time.Second)
				}
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
				metrics.RateLimitedTotal.WithLabelValues(cfg.Prefix).Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"error":       "too many requests, please try again later",
					"retry_after": retryAfter,
				})
			}
			return next(c)
		}
	}
}
