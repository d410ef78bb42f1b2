package request

import (
	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-linear/pkg/common/http/response"
	"github.com/huynhanx03/go-linear/pkg/common/http/validation"
)

// ParseRequest binds the JSON body into T and validates it.
// On failure the error response is already written and ok is false.
func ParseRequest[T any](c *gin.Context) (*T, bool) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, response.CodeParamInvalid, response.ToErrorResponse(err))
		return nil, false
	}

	if ok, err := validation.IsRequestValid(req); !ok {
		response.ErrorResponse(c, response.CodeValidationFailed, response.ToErrorResponse(err))
		return nil, false
	}

	return &req, true
}
