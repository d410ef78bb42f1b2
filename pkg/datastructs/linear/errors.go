package linear

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned by New when capacity is not positive.
var ErrInvalidCapacity = errors.New("linear: capacity must be positive")

// Kind discriminates the domain failures of a Collection.
type Kind int

const (
	KindNone Kind = iota
	KindOverflow
	KindUnderflow
	KindInvalidValue
)

func (k Kind) String() string {
	switch k {
	case KindOverflow:
		return "overflow"
	case KindUnderflow:
		return "underflow"
	case KindInvalidValue:
		return "invalid_value"
	}
	return "none"
}

// OverflowError returns when inserting into a full collection.
type OverflowError struct {
	Capacity int
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("linear: overflow, capacity %d reached", e.Capacity)
}

// IsOverflow returns a boolean indicating whether the error is an overflow error.
func IsOverflow(err error) bool {
	if err == nil {
		return false
	}
	var e *OverflowError
	return errors.As(err, &e)
}

// UnderflowError returns when removing from or peeking into an empty collection.
type UnderflowError struct {
	Op string // "remove" or "peek"
}

// Error implements the error interface.
func (e *UnderflowError) Error() string {
	return "linear: underflow, " + e.Op + " on empty collection"
}

// IsUnderflow returns a boolean indicating whether the error is an underflow error.
func IsUnderflow(err error) bool {
	if err == nil {
		return false
	}
	var e *UnderflowError
	return errors.As(err, &e)
}

// InvalidValueError returns when an input value is rejected before any mutation.
type InvalidValueError struct {
	Raw string
	Err error
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("linear: invalid value %q", e.Raw)
	}
	return fmt.Sprintf("linear: invalid value %q: %v", e.Raw, e.Err)
}

// Unwrap implements the errors.Wrapper interface.
func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

// IsInvalidValue returns a boolean indicating whether the error is an invalid value error.
func IsInvalidValue(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidValueError
	return errors.As(err, &e)
}

// KindOf returns the domain failure kind of err, or KindNone.
func KindOf(err error) Kind {
	switch {
	case IsOverflow(err):
		return KindOverflow
	case IsUnderflow(err):
		return KindUnderflow
	case IsInvalidValue(err):
		return KindInvalidValue
	}
	return KindNone
}
