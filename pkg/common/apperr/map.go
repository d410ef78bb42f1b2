package apperr

import (
	"fmt"
)

// Generic Action Messages
const (
	MsgInsertFailed  = "failed to insert"
	MsgRemoveFailed  = "failed to remove"
	MsgPeekFailed    = "failed to peek"
	MsgModeFailed    = "failed to switch mode"
	MsgParseFailed   = "failed to parse"
	MsgProcessFailed = "failed to process"
	MsgUnknown       = "unknown command"
)

// MapError wraps an error with a standardized message
func MapError(scope string, err error, code int, msg string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s %s", scope, msg)
	return Wrap(err, code, formattedMsg, httpStatus)
}

// NewError creates a new AppError with standardized message format
func NewError(scope string, code int, msg string, httpStatus int, cause error) *AppError {
	formattedMsg := fmt.Sprintf("%s %s", scope, msg)
	return New(code, formattedMsg, httpStatus, cause)
}
