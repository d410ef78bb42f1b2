package queue

import (
	"math/bits"
	"runtime"
	"sync/atomic"

	"github.com/huynhanx03/go-linear/pkg/utils"
)

var _ Queue[int] = (*MPMC[int])(nil)

const (
	cacheLineSize = 64
	spinTries     = 16
)

type slot[T any] struct {
	turn atomic.Uint64
	data T
	_    [cacheLineSize - 16]byte
}

// MPMC is a lock-free bounded multi-producer multi-consumer queue.
//
// Each slot carries a turn counter: even turns are free for a producer, odd
// turns hold data for a consumer. head and tail only ever grow.
type MPMC[T any] struct {
	capacity     uint64
	mask         uint64
	capacityLog2 uint64
	slots        []slot[T]

	_    [cacheLineSize]byte
	head atomic.Uint64
	_    [cacheLineSize]byte
	tail atomic.Uint64
}

// NewMPMC creates a queue whose capacity is rounded up to a power of two
// (minimum 2). Callers that expose the size should report Capacity.
func NewMPMC[T any](capacity int) *MPMC[T] {
	capacity = utils.CeilToPowerOfTwo(capacity)

	return &MPMC[T]{
		capacity:     uint64(capacity),
		mask:         uint64(capacity - 1),
		capacityLog2: uint64(bits.TrailingZeros64(uint64(capacity))),
		slots:        make([]slot[T], capacity),
	}
}

func (q *MPMC[T]) idx(pos uint64) uint64  { return pos & q.mask }
func (q *MPMC[T]) turn(pos uint64) uint64 { return pos >> q.capacityLog2 }

func (q *MPMC[T]) Enqueue(item T) bool {
	for spin := 0; ; spin++ {
		head := q.head.Load()
		s := &q.slots[q.idx(head)]
		want := q.turn(head) * 2

		if s.turn.Load() == want {
			if q.head.CompareAndSwap(head, head+1) {
				s.data = item
				s.turn.Store(want + 1)
				return true
			}
		} else if head == q.head.Load() {
			return false
		}

		backoff(spin)
	}
}

func (q *MPMC[T]) Dequeue() (T, bool) {
	var zero T

	for spin := 0; ; spin++ {
		tail := q.tail.Load()
		s := &q.slots[q.idx(tail)]
		want := q.turn(tail)*2 + 1

		if s.turn.Load() == want {
			if q.tail.CompareAndSwap(tail, tail+1) {
				data := s.data
				s.data = zero
				s.turn.Store(want + 1)
				return data, true
			}
		} else if tail == q.tail.Load() {
			return zero, false
		}

		backoff(spin)
	}
}

// Len is approximate while producers or consumers are active.
func (q *MPMC[T]) Len() int {
	n := int64(q.head.Load()) - int64(q.tail.Load())
	if n < 0 {
		return 0
	}
	return int(n)
}

func (q *MPMC[T]) Capacity() uint64 { return q.capacity }

func backoff(spin int) {
	if spin >= spinTries {
		runtime.Gosched()
	}
}
