package buffer

// Ring is a fixed-capacity circular buffer that can be consumed from both ends.
// Items are always written at the back; the front is the oldest item.
// It is NOT thread-safe.
type Ring[T any] struct {
	buf      []T
	capacity int
	readPos  int // index of the front item
	count    int // number of buffered items
}

// NewRing creates a Ring holding at most capacity items.
// A non-positive capacity yields a ring that is permanently full and empty.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring[T]{
		buf:      make([]T, capacity),
		capacity: capacity,
	}
}

// PushBack appends item at the back. Returns false if the ring is full.
func (r *Ring[T]) PushBack(item T) bool {
	if r.IsFull() {
		return false
	}
	r.buf[r.wrapIndex(r.readPos+r.count)] = item
	r.count++
	return true
}

// PopFront removes and returns the oldest item.
// Returns (zero, false) if the ring is empty.
func (r *Ring[T]) PopFront() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}

	item := r.buf[r.readPos]
	r.buf[r.readPos] = zero
	r.readPos = r.wrapIndex(r.readPos + 1)
	r.count--
	if r.count == 0 {
		r.readPos = 0
	}
	return item, true
}

// PopBack removes and returns the newest item.
// Returns (zero, false) if the ring is empty.
func (r *Ring[T]) PopBack() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}

	idx := r.wrapIndex(r.readPos + r.count - 1)
	item := r.buf[idx]
	r.buf[idx] = zero
	r.count--
	if r.count == 0 {
		r.readPos = 0
	}
	return item, true
}

// Front returns the oldest item without removing it.
func (r *Ring[T]) Front() (T, bool) {
	if r.count == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.readPos], true
}

// Back returns the newest item without removing it.
func (r *Ring[T]) Back() (T, bool) {
	if r.count == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.wrapIndex(r.readPos+r.count-1)], true
}

// Len returns the number of buffered items.
func (r *Ring[T]) Len() int {
	return r.count
}

// Cap returns the capacity of the ring.
func (r *Ring[T]) Cap() int {
	return r.capacity
}

// Available returns the number of items that can still be pushed.
func (r *Ring[T]) Available() int {
	return r.capacity - r.count
}

// IsEmpty reports whether the ring holds no items.
func (r *Ring[T]) IsEmpty() bool {
	return r.count == 0
}

// IsFull reports whether the ring is at capacity.
func (r *Ring[T]) IsFull() bool {
	return r.count == r.capacity
}

// Slice returns a copy of the buffered items ordered front to back.
// Returns nil if the ring is empty.
func (r *Ring[T]) Slice() []T {
	if r.count == 0 {
		return nil
	}

	result := make([]T, 0, r.count)

	// Simple case: no wrap-around
	end := r.readPos + r.count
	if end <= r.capacity {
		return append(result, r.buf[r.readPos:end]...)
	}

	// Wrap-around case
	result = append(result, r.buf[r.readPos:]...)
	return append(result, r.buf[:end-r.capacity]...)
}

// Reset clears the ring and releases references held by the backing array.
func (r *Ring[T]) Reset() {
	clear(r.buf)
	r.readPos = 0
	r.count = 0
}

// wrapIndex returns the index wrapped within the ring capacity.
func (r *Ring[T]) wrapIndex(idx int) int {
	if idx >= r.capacity {
		return idx - r.capacity
	}
	return idx
}
