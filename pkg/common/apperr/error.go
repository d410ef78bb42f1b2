package apperr

import (
	"errors"
	"fmt"
)

// AppError is an error carrying the response code and HTTP status it maps to.
type AppError struct {
	Code       int
	Message    string
	HTTPStatus int
	Err        error
	// Data is optional payload returned alongside the error (e.g. unchanged state).
	Data any
}

// New creates an AppError.
func New(code int, msg string, httpStatus int, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    msg,
		HTTPStatus: httpStatus,
		Err:        cause,
	}
}

// Wrap wraps err into an AppError. Returns nil if err is nil.
func Wrap(err error, code int, msg string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return New(code, msg, httpStatus, err)
}

// WithData attaches a payload and returns e.
func (e *AppError) WithData(data any) *AppError {
	e.Data = data
	return e
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap implements the errors.Wrapper interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var e *AppError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
