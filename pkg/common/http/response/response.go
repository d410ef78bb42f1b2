package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/huynhanx03/go-linear/pkg/common/apperr"
)

// ResponseData is the envelope of every JSON response.
type ResponseData struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResponse writes a successful envelope.
func SuccessResponse(c *gin.Context, code int, data any) {
	c.JSON(HTTPStatus(code), ResponseData{
		Success: true,
		Code:    code,
		Message: Message(code),
		Data:    data,
	})
}

// ErrorResponse writes a failed envelope. An *apperr.AppError in err's chain
// overrides code, status, message and data.
func ErrorResponse(c *gin.Context, code int, err error) {
	status := HTTPStatus(code)
	body := ResponseData{Code: code, Message: Message(code)}

	if appErr, ok := apperr.As(err); ok {
		status = appErr.HTTPStatus
		body.Code = appErr.Code
		body.Message = appErr.Message
		body.Data = appErr.Data
	} else if err != nil {
		body.Message = err.Error()
	}

	c.AbortWithStatusJSON(status, body)
}

// ToErrorResponse turns binding and validation failures into a readable error.
func ToErrorResponse(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return errors.New("field '" + fe.Field() + "' failed '" + fe.Tag() + "=" + fe.Param() + "'")
	}
	return errors.New("field '" + fe.Field() + "' failed '" + fe.Tag() + "'")
}
