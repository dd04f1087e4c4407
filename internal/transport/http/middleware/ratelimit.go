package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go-user-post-api/internal/transport/http/response"
)

// RateLimit applies a global token bucket across all requests.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrEnvelope{
			Message:   "Too many requests",
			ErrorCode: "RATE_LIMITED",
		})
	}
}
