// Package queue provides bounded FIFO queues safe for concurrent producers
// and consumers.
package queue

// Queue is a bounded FIFO queue.
type Queue[T any] interface {
	// Enqueue reports false when the queue is full.
	Enqueue(item T) bool
	// Dequeue reports false when the queue is empty.
	Dequeue() (T, bool)
	Capacity() uint64
}
