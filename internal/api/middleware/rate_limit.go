package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lucasroqe/PDM-App-School/pkg/redis"
	"github.com/lucasroqe/PDM-App-School/pkg/response"
)

// RateLimit sliding-window limit per client IP and route, backed by Redis.
// With rdb nil, or when Redis errors, requests pass.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, "Muitas tentativas, tente novamente mais tarde")
			c.Abort()
			return
		}

		c.Next()
	}
}
