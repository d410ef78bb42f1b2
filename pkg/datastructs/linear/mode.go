package linear

import (
	"fmt"
	"strings"
)

// Mode selects the removal discipline of a Collection.
type Mode string

const (
	// ModeStack removes from the rear (last in, first out).
	ModeStack Mode = "stack"
	// ModeQueue removes from the front (first in, first out).
	ModeQueue Mode = "queue"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeStack || m == ModeQueue
}

func (m Mode) String() string {
	return string(m)
}

// ParseMode converts s to a Mode. Matching is case-insensitive and
// accepts "lifo" and "fifo" as aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stack", "lifo":
		return ModeStack, nil
	case "queue", "fifo":
		return ModeQueue, nil
	}
	return "", &InvalidValueError{Raw: s, Err: fmt.Errorf("unknown mode %q", s)}
}
