package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-user-post-api/internal/transport/http/response"
)

// MaxBodyBytes rejects request bodies above n bytes.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, response.ErrEnvelope{
				Message:   "Request body too large",
				ErrorCode: "PAYLOAD_TOO_LARGE",
			})
		}
	}
}
