package handler

import (
	"github.com/gin-gonic/gin"

	"go-user-post-api/internal/transport/http/response"
	"go-user-post-api/internal/validate"
)

// bindBody decodes the request body into the raw object the validation
// layer consumes. A body that is not a JSON object is reported as a
// validation failure, not a 500.
func bindBody(c *gin.Context) (map[string]any, bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.ValidationFailed(c, []validate.FieldError{{
			Field:   "body",
			Message: map[string]string{"isJson": "request body must be a JSON object"},
		}})
		return nil, false
	}
	return body, true
}
