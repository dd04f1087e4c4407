package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-user-post-api/internal/transport/http/response"
)

// Recovery turns a panicking handler into a bare 500; the panic value is
// logged, never exposed.
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.String("rid", c.GetString("rid")),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrEnvelope{
					Message:   "Internal Server Error",
					ErrorCode: "INTERNAL_SERVER_ERROR",
				})
			}
		}()
		c.Next()
	}
}
