// Package linear implements a bounded linear collection that behaves as a
// stack or a queue depending on its current mode.
//
// Elements are always stored in insertion order and inserted at the rear.
// The mode only decides which end Remove takes from and which end Peek
// reports, so switching modes never reorders stored elements.
//
// A Collection is NOT thread-safe; callers serialize access.
package linear

import (
	"github.com/huynhanx03/go-linear/pkg/datastructs/buffer"
)

// Collection is a bounded stack or queue with a fixed capacity.
type Collection[T any] struct {
	items    *buffer.Ring[T]
	mode     Mode
	parse    Parser[T]
	validate func(T) error
}

// Option configures a Collection.
type Option[T any] func(*Collection[T])

// WithMode sets the initial mode. Invalid modes are ignored.
func WithMode[T any](m Mode) Option[T] {
	return func(c *Collection[T]) {
		if m.Valid() {
			c.mode = m
		}
	}
}

// WithParser sets the parser used by InsertRaw.
func WithParser[T any](p Parser[T]) Option[T] {
	return func(c *Collection[T]) {
		c.parse = p
	}
}

// WithValidator sets an element check run by Insert before any mutation.
func WithValidator[T any](fn func(T) error) Option[T] {
	return func(c *Collection[T]) {
		c.validate = fn
	}
}

// New creates an empty collection in stack mode.
func New[T any](capacity int, opts ...Option[T]) (*Collection[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	c := &Collection[T]{
		items: buffer.NewRing[T](capacity),
		mode:  ModeStack,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewInt64 creates a collection of int64 elements that parses raw input with ParseInt64.
func NewInt64(capacity int, opts ...Option[int64]) (*Collection[int64], error) {
	return New(capacity, append([]Option[int64]{WithParser(ParseInt64)}, opts...)...)
}

// Insert appends v at the rear and returns the full sequence.
func (c *Collection[T]) Insert(v T) ([]T, error) {
	if c.validate != nil {
		if err := c.validate(v); err != nil {
			return nil, asInvalidValue(v, err)
		}
	}
	if !c.items.PushBack(v) {
		return nil, &OverflowError{Capacity: c.items.Cap()}
	}
	return c.items.Slice(), nil
}

// InsertRaw parses raw and inserts the result.
// Parse failures are reported as *InvalidValueError before any mutation.
func (c *Collection[T]) InsertRaw(raw string) ([]T, error) {
	if c.parse == nil {
		return nil, &InvalidValueError{Raw: raw}
	}
	v, err := c.parse(raw)
	if err != nil {
		if IsInvalidValue(err) {
			return nil, err
		}
		return nil, &InvalidValueError{Raw: raw, Err: err}
	}
	return c.Insert(v)
}

// Remove removes the rear element in stack mode or the front element in queue mode.
func (c *Collection[T]) Remove() (T, error) {
	var (
		v  T
		ok bool
	)
	if c.mode == ModeQueue {
		v, ok = c.items.PopFront()
	} else {
		v, ok = c.items.PopBack()
	}
	if !ok {
		return v, &UnderflowError{Op: "remove"}
	}
	return v, nil
}

// Peek inspects the collection without mutating it.
func (c *Collection[T]) Peek() (Peeked[T], error) {
	front, ok := c.items.Front()
	if !ok {
		return Peeked[T]{Mode: c.mode}, &UnderflowError{Op: "peek"}
	}
	rear, _ := c.items.Back()
	return Peeked[T]{Mode: c.mode, front: front, rear: rear}, nil
}

// DisplayAll returns a copy of the elements from front to rear.
// ok is false when the collection is empty.
func (c *Collection[T]) DisplayAll() (elements []T, ok bool) {
	if c.items.IsEmpty() {
		return nil, false
	}
	return c.items.Slice(), true
}

// IsEmpty reports whether the collection has no elements.
func (c *Collection[T]) IsEmpty() bool {
	return c.items.IsEmpty()
}

// IsFull reports whether the collection is at capacity.
func (c *Collection[T]) IsFull() bool {
	return c.items.IsFull()
}

// Size returns the number of stored elements.
func (c *Collection[T]) Size() int {
	return c.items.Len()
}

// Capacity returns the fixed maximum number of elements.
func (c *Collection[T]) Capacity() int {
	return c.items.Cap()
}

// Remaining returns Capacity() - Size().
func (c *Collection[T]) Remaining() int {
	return c.items.Available()
}

// Mode returns the current mode.
func (c *Collection[T]) Mode() Mode {
	return c.mode
}

// SetMode switches the removal discipline without touching stored elements.
// Invalid modes are ignored.
func (c *Collection[T]) SetMode(m Mode) {
	if m.Valid() {
		c.mode = m
	}
}

func asInvalidValue[T any](v T, err error) error {
	if IsInvalidValue(err) {
		return err
	}
	return &InvalidValueError{Raw: formatValue(v), Err: err}
}
