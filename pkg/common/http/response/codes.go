package response

import "net/http"

const (
	CodeSuccess = 20000

	CodeBadRequest       = 40000
	CodeParamInvalid     = 40001
	CodeValidationFailed = 40002
	CodeUnknownCommand   = 40003
	CodeNotFound         = 40400
	CodeConflict         = 40900
	CodeOverflow         = 40901
	CodeUnderflow        = 40902
	CodeUnprocessable    = 42200
	CodeInvalidValue     = 42201

	CodeInternalServer = 50000
)

var codeMessages = map[int]string{
	CodeSuccess:          "success",
	CodeBadRequest:       "bad request",
	CodeParamInvalid:     "invalid request parameters",
	CodeValidationFailed: "request validation failed",
	CodeUnknownCommand:   "unknown command",
	CodeNotFound:         "not found",
	CodeConflict:         "conflict",
	CodeOverflow:         "overflow",
	CodeUnderflow:        "underflow",
	CodeUnprocessable:    "unprocessable entity",
	CodeInvalidValue:     "invalid value",
	CodeInternalServer:   "internal server error",
}

// Message returns the default message for code.
func Message(code int) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return codeMessages[CodeInternalServer]
}

// HTTPStatus derives the HTTP status from the first three digits of code.
func HTTPStatus(code int) int {
	status := code / 100
	if http.StatusText(status) == "" {
		return http.StatusInternalServerError
	}
	return status
}
