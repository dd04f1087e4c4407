package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-user-post-api/internal/transport/http/response"
)

// Timeout bounds each request; handlers thread the deadline down through
// context to the storage engine.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, response.ErrEnvelope{
				Message:   "Request timed out",
				ErrorCode: "REQUEST_TIMEOUT",
			})
		}
	}
}
