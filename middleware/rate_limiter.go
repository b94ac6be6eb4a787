package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimiterKey = "rateLimiter"

// RateLimiter is a fixed-window limiter keyed per IP, method and route.
// Without Redis every request passes.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		key := rateLimitKey(c)
		count, ttl, err := hitWindow(c.Request.Context(), key, window)
		if err != nil {
			log.Printf("[rate-limit] ⚠️ redis error on %s, letting request through: %v", key, err)
			c.Next()
			return
		}
		if ttl <= 0 {
			ttl = window
		}

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        time.Now().Add(ttl).Truncate(time.Second),
			ResetInSeconds: int(ttl.Seconds()),
		}
		c.Set(rateLimiterKey, rate)

		if int(count) > maxRequests {
			lang := RequestLang(c)
			c.Header("Retry-After", rate.ResetAt.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: lang.T("too_many_requests"),
				Error:   true,
				Rate:    rate,
				Lang:    lang.String(),
			})
			return
		}

		c.Next()
	}
}

// rl:<ip>:<METHOD>:<route pattern>
func rateLimitKey(c *gin.Context) string {
	var b strings.Builder
	b.WriteString("rl:")
	b.WriteString(c.ClientIP())
	b.WriteByte(':')
	b.WriteString(c.Request.Method)
	b.WriteByte(':')
	b.WriteString(c.FullPath())
	return b.String()
}

// hitWindow counts one request and starts the window on the first hit.
func hitWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := config.RedisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		ttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return incr.Val(), ttl.Val(), nil
}
