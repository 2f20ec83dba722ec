package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"smart-todo/pkg/response"
)

const (
	limiterCacheSize = 4096
	limiterCacheTTL  = 10 * time.Minute
)

// RateLimit caps per-user calls to the expensive AI-trigger endpoints at
// perMin requests per minute. Limiters are kept per user in an expiring
// cache so idle users do not accumulate. Must run after Auth.
func (m Middleware) RateLimit(perMin int) gin.HandlerFunc {
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL)

	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		limiter, ok := limiters.Get(sc.UserID)
		if !ok {
			limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
			limiters.Add(sc.UserID, limiter)
		}

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests, slow down",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
