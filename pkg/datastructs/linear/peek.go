package linear

import "fmt"

// Peeked is the result of Collection.Peek.
// A stack exposes a single top element; a queue exposes both ends.
type Peeked[T any] struct {
	Mode  Mode
	front T
	rear  T
}

// Top returns the element Remove would take in stack mode (the rear).
func (p Peeked[T]) Top() T {
	return p.rear
}

// Ends returns the front and rear elements as observed in queue mode.
func (p Peeked[T]) Ends() (front, rear T) {
	return p.front, p.rear
}

// Next returns the element Remove would take under the peeked mode.
func (p Peeked[T]) Next() T {
	if p.Mode == ModeQueue {
		return p.front
	}
	return p.rear
}

func formatValue(v any) string {
	return fmt.Sprint(v)
}
