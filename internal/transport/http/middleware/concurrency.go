package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"go-user-post-api/internal/transport/http/response"
)

// ConcurrencyLimit caps in-flight requests to protect the storage engine's
// connection pool.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.ErrEnvelope{
				Message:   "Server busy",
				ErrorCode: "SERVER_BUSY",
			})
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
