package events

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-linear/pkg/datastructs/queue"
)

var (
	ErrSinkClosed = errors.New("events: sink closed")
	ErrBufferFull = errors.New("events: async buffer full")
)

// AsyncSink hands events to a background goroutine that delivers them to the
// next sink in publish order. Publish never waits on the broker; it fails
// with ErrBufferFull when the buffer has no room.
//
// Events published concurrently with Close may be dropped.
type AsyncSink struct {
	next    Sink
	buf     *queue.MPMC[*Event]
	timeout time.Duration
	onError func(*Event, error)

	notify chan struct{}
	done   chan struct{}
	closed atomic.Bool
	wg     sync.WaitGroup
}

// NewAsyncSink starts the delivery goroutine. size is rounded up to a power
// of two (minimum 2); Capacity reports the effective size. onError receives
// delivery failures and may be nil.
func NewAsyncSink(next Sink, size int, timeout time.Duration, onError func(*Event, error)) *AsyncSink {
	s := &AsyncSink{
		next:    next,
		buf:     queue.NewMPMC[*Event](size),
		timeout: timeout,
		onError: onError,
		notify:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	s.wg.Add(1)
	go s.loop()
	return s
}

func (s *AsyncSink) Publish(_ context.Context, ev *Event) error {
	if s.closed.Load() {
		return ErrSinkClosed
	}
	if !s.buf.Enqueue(ev) {
		return errors.Wrapf(ErrBufferFull, "drop seq %d", ev.Seq)
	}
	select {
	case s.notify <- struct{}{}:
	default:
	}
	return nil
}

// Close delivers buffered events, then closes the next sink.
func (s *AsyncSink) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(s.done)
	s.wg.Wait()
	return s.next.Close()
}

// Capacity returns the effective buffer size.
func (s *AsyncSink) Capacity() int {
	return int(s.buf.Capacity())
}

// Pending returns the approximate number of undelivered events.
func (s *AsyncSink) Pending() int {
	return s.buf.Len()
}

func (s *AsyncSink) loop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.notify:
			s.drain()
		case <-s.done:
			s.drain()
			return
		}
	}
}

func (s *AsyncSink) drain() {
	for {
		ev, ok := s.buf.Dequeue()
		if !ok {
			return
		}
		if err := s.deliver(ev); err != nil && s.onError != nil {
			s.onError(ev, err)
		}
	}
}

func (s *AsyncSink) deliver(ev *Event) error {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.next.Publish(ctx, ev)
}
