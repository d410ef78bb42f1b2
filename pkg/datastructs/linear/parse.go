package linear

import (
	"errors"
	"strconv"
	"strings"
)

var errNotInteger = errors.New("not a decimal integer")

// Parser converts raw user input into an element.
type Parser[T any] func(raw string) (T, error)

// ParseInt64 accepts an optional sign followed by decimal digits, ignoring
// surrounding whitespace. Fractions are rejected instead of truncated.
func ParseInt64(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if !isDecimal(s) {
		return 0, &InvalidValueError{Raw: raw, Err: errNotInteger}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &InvalidValueError{Raw: raw, Err: err}
	}
	return v, nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
