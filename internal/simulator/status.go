package simulator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/huynhanx03/go-linear/pkg/datastructs/linear"
)

// StatusLine formats the message shown for a failed command.
func StatusLine(mode linear.Mode, err error) string {
	label := strings.ToUpper(mode.String())

	var (
		oe *linear.OverflowError
		ue *linear.UnderflowError
		ie *linear.InvalidValueError
	)
	switch {
	case errors.As(err, &oe):
		return fmt.Sprintf("%s OVERFLOW: capacity %d reached", label, oe.Capacity)
	case errors.As(err, &ue):
		return fmt.Sprintf("%s UNDERFLOW: cannot %s, the %s is empty", label, ue.Op, mode)
	case errors.As(err, &ie):
		if ie.Raw == "" {
			return "Value required: enter an integer."
		}
		return fmt.Sprintf("Invalid value %q: enter an integer.", ie.Raw)
	case errors.Is(err, ErrUnknownCommand):
		return "Unknown command."
	case err != nil:
		return err.Error()
	}
	return ""
}

// EmptyLine is the dedicated message for an empty display.
func EmptyLine(mode linear.Mode) string {
	return fmt.Sprintf("The %s is empty.", mode)
}

func insertLine(mode linear.Mode, v int64) string {
	if mode == linear.ModeQueue {
		return fmt.Sprintf("Enqueued %d at the rear of the queue.", v)
	}
	return fmt.Sprintf("Pushed %d onto the stack.", v)
}

func removeLine(mode linear.Mode, v int64) string {
	if mode == linear.ModeQueue {
		return fmt.Sprintf("Dequeued %d from the front of the queue.", v)
	}
	return fmt.Sprintf("Popped %d from the stack.", v)
}
