package middleware

import (
	"fmt"
	"time"

	"github.com/eduforge/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimit returns a fixed-window per-identity limiter backed by Redis.
// Identity is the authenticated user when present, the client IP otherwise.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentUserID(c)
		if identity == "" {
			identity = c.ClientIP()
		}

		key := fmt.Sprintf("ef:ratelimit:%s:%s:%d",
			c.FullPath(), identity, time.Now().Unix()/int64(window.Seconds()))
		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis down: fail open.
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}
		if count > int64(limit) {
			response.TooManyRequests(c, "too many requests, slow down")
			return
		}
		c.Next()
	}
}
