package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-user-post-api/internal/apperr"
	"go-user-post-api/internal/validate"
)

// Envelope is the fixed success wrapper. Data is omitted for message-only
// responses such as deletes.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrEnvelope is the fixed wrapper for every classified failure. Errors is
// populated for validation failures only.
type ErrEnvelope struct {
	Message   string                `json:"message"`
	ErrorCode string                `json:"errorCode"`
	Errors    []validate.FieldError `json:"errors,omitempty"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Message: message, Data: data})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Message: message})
}

// ValidationFailed writes the 400 produced by the validation layer.
func ValidationFailed(c *gin.Context, errs []validate.FieldError) {
	c.JSON(http.StatusBadRequest, ErrEnvelope{
		Message:   "Validation failed",
		ErrorCode: CodeValidation,
		Errors:    errs,
	})
}

// Error maps a service failure onto the wire. Classified errors keep their
// status and code; anything else is logged and surfaced as a bare 500
// without exposing the message.
func Error(c *gin.Context, log *zap.Logger, err error) {
	if ae, ok := apperr.As(err); ok {
		c.JSON(ae.Status, ErrEnvelope{Message: ae.Message, ErrorCode: ae.Code})
		return
	}
	log.Error("unhandled error",
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, ErrEnvelope{
		Message:   "Internal Server Error",
		ErrorCode: "INTERNAL_SERVER_ERROR",
	})
}
