package simulator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/huynhanx03/go-linear/internal/events"
	"github.com/huynhanx03/go-linear/pkg/datastructs/linear"
	"github.com/huynhanx03/go-linear/pkg/timer"
)

type recordingSink struct {
	mu     sync.Mutex
	events []*events.Event
	err    error
	closed bool
}

func (s *recordingSink) Publish(_ context.Context, ev *events.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func (s *recordingSink) Close() error {
	s.closed = true
	return nil
}

func newDispatcher(t *testing.T, capacity int, opts ...Option) *Dispatcher {
	t.Helper()
	coll, err := linear.NewInt64(capacity)
	require.NoError(t, err)
	return NewDispatcher(coll, opts...)
}

func exec(t *testing.T, d *Dispatcher, name, value string) *Result {
	t.Helper()
	res, err := d.Execute(context.Background(), name, value)
	require.NoError(t, err, "%s %s", name, value)
	return res
}

// =============================================================================
// ParseCommand
// =============================================================================

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in       string
		wantOp   Op
		wantMode linear.Mode
		wantErr  bool
	}{
		{"push", OpInsert, "", false},
		{"ENQUEUE", OpInsert, "", false},
		{"stack_push", OpInsert, linear.ModeStack, false},
		{"queue-dequeue", OpRemove, linear.ModeQueue, false},
		{"queue peek", OpPeek, linear.ModeQueue, false},
		{"is_full", OpIsFull, "", false},
		{"mode", OpSetMode, "", false},
		{"stack_capacity", OpCapacity, linear.ModeStack, false},
		{"shuffle", 0, "", true},
		{"", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cmd, err := ParseCommand(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCommand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOp, cmd.Op)
			assert.Equal(t, tt.wantMode, cmd.Mode)
		})
	}
}

func TestCommand_NeedsValue(t *testing.T) {
	for _, name := range CommandNames() {
		cmd, err := ParseCommand(name)
		require.NoError(t, err)
		want := cmd.Op == OpInsert || cmd.Op == OpSetMode
		assert.Equal(t, want, cmd.NeedsValue(), name)
	}
}

// =============================================================================
// Execute
// =============================================================================

func TestExecute_StackScenario(t *testing.T) {
	d := newDispatcher(t, 3)

	res := exec(t, d, "stack_push", "1")
	assert.Equal(t, []int64{1}, res.Elements)
	assert.Equal(t, "Pushed 1 onto the stack.", res.Message)
	exec(t, d, "stack_push", "2")
	res = exec(t, d, "stack_push", "3")
	assert.Equal(t, []int64{1, 2, 3}, res.Elements)
	assert.True(t, res.Full)

	res, err := d.Execute(context.Background(), "stack_push", "4")
	assert.True(t, linear.IsOverflow(err))
	assert.Equal(t, []int64{1, 2, 3}, res.Elements)
	assert.Equal(t, "overflow", res.ErrorKind)
	assert.Equal(t, "STACK OVERFLOW: capacity 3 reached", res.Message)

	res = exec(t, d, "stack_pop", "")
	assert.Equal(t, int64(3), *res.Value)
	assert.Equal(t, []int64{1, 2}, res.Elements)
	assert.Equal(t, "Popped 3 from the stack.", res.Message)

	res = exec(t, d, "stack_peek", "")
	assert.Equal(t, int64(2), *res.Value)
	assert.Nil(t, res.Front)
	assert.Equal(t, 2, res.Size)
}

func TestExecute_QueueScenario(t *testing.T) {
	d := newDispatcher(t, 3)

	for _, v := range []string{"1", "2", "3"} {
		exec(t, d, "queue_enqueue", v)
	}
	res := exec(t, d, "queue_dequeue", "")
	assert.Equal(t, int64(1), *res.Value)
	assert.Equal(t, []int64{2, 3}, res.Elements)
	assert.Equal(t, "Dequeued 1 from the front of the queue.", res.Message)

	res = exec(t, d, "queue_peek", "")
	assert.Nil(t, res.Value)
	assert.Equal(t, int64(2), *res.Front)
	assert.Equal(t, int64(3), *res.Rear)
	assert.Equal(t, "Front: 2, Rear: 3", res.Message)
}

func TestExecute_ModePrefixSwitchesWithoutReorder(t *testing.T) {
	d := newDispatcher(t, 4)
	exec(t, d, "stack_push", "1")
	exec(t, d, "stack_push", "2")
	exec(t, d, "stack_push", "3")

	res := exec(t, d, "queue_dequeue", "")
	assert.Equal(t, linear.ModeQueue, res.Mode)
	assert.Equal(t, int64(1), *res.Value)

	res = exec(t, d, "pop", "")
	assert.Equal(t, linear.ModeQueue, res.Mode, "generic command keeps current mode")
	assert.Equal(t, int64(2), *res.Value)
}

func TestExecute_Underflow(t *testing.T) {
	d := newDispatcher(t, 2)

	res, err := d.Execute(context.Background(), "queue_dequeue", "")
	assert.True(t, linear.IsUnderflow(err))
	assert.Equal(t, "QUEUE UNDERFLOW: cannot remove, the queue is empty", res.Message)
	assert.True(t, res.Empty)

	res, err = d.Execute(context.Background(), "stack_peek", "")
	assert.True(t, linear.IsUnderflow(err))
	assert.Equal(t, "STACK UNDERFLOW: cannot peek, the stack is empty", res.Message)
	assert.Equal(t, "underflow", res.ErrorKind)
}

func TestExecute_InvalidValue(t *testing.T) {
	d := newDispatcher(t, 2)

	tests := []struct {
		value   string
		wantMsg string
	}{
		{"", "Value required: enter an integer."},
		{"abc", `Invalid value "abc": enter an integer.`},
		{"2.5", `Invalid value "2.5": enter an integer.`},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			res, err := d.Execute(context.Background(), "push", tt.value)
			assert.True(t, linear.IsInvalidValue(err))
			assert.Equal(t, tt.wantMsg, res.Message)
			assert.Equal(t, "invalid_value", res.ErrorKind)
			assert.True(t, res.Empty)
		})
	}
}

func TestExecute_Queries(t *testing.T) {
	d := newDispatcher(t, 3)

	res := exec(t, d, "display", "")
	assert.True(t, res.Empty)
	assert.Equal(t, []int64{}, res.Elements)
	assert.Equal(t, "The stack is empty.", res.Message)

	res = exec(t, d, "is_empty", "")
	assert.True(t, *res.Flag)

	exec(t, d, "push", "7")
	exec(t, d, "push", "8")

	res = exec(t, d, "size", "")
	assert.Equal(t, int64(2), *res.Value)
	assert.Equal(t, "Size: 2 of 3", res.Message)

	res = exec(t, d, "capacity", "")
	assert.Equal(t, int64(3), *res.Value)

	res = exec(t, d, "remaining", "")
	assert.Equal(t, int64(1), *res.Value)

	res = exec(t, d, "is_full", "")
	assert.False(t, *res.Flag)
	assert.Equal(t, "The stack is not full.", res.Message)

	res = exec(t, d, "stack_display", "")
	assert.Equal(t, "Contents: 7, 8", res.Message)
	assert.False(t, res.Empty)

	res = exec(t, d, "is_empty", "")
	assert.False(t, *res.Flag)
	assert.Equal(t, "The stack is not empty.", res.Message)
}

func TestExecute_SetMode(t *testing.T) {
	d := newDispatcher(t, 3)

	res := exec(t, d, "mode", "queue")
	assert.Equal(t, linear.ModeQueue, res.Mode)
	assert.Equal(t, "Mode set to queue.", res.Message)

	res, err := d.Execute(context.Background(), "mode", "deque")
	assert.True(t, linear.IsInvalidValue(err))
	assert.Equal(t, linear.ModeQueue, res.Mode)
	assert.Equal(t, `Unknown mode "deque": use stack or queue.`, res.Message)
}

func TestExecute_UnknownCommand(t *testing.T) {
	sink := &recordingSink{}
	d := newDispatcher(t, 3, WithSink(sink))

	res, err := d.Execute(context.Background(), "shuffle", "")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, "Unknown command.", res.Message)
	assert.Empty(t, sink.events)
}

// =============================================================================
// Events
// =============================================================================

func TestExecute_PublishesEvents(t *testing.T) {
	sink := &recordingSink{}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := newDispatcher(t, 1,
		WithSink(sink),
		WithSession("s-1"),
		WithClock(timer.NewManualTimer(start)),
	)

	exec(t, d, "push", "5")
	_, _ = d.Execute(context.Background(), "push", "6")
	exec(t, d, "peek", "")

	require.Len(t, sink.events, 3)
	for i, ev := range sink.events {
		assert.Equal(t, uint64(i+1), ev.Seq)
		assert.Equal(t, "s-1", ev.Session)
		assert.Equal(t, start, ev.At)
		assert.NotEmpty(t, ev.ID)
	}
	assert.Equal(t, []int64{5}, sink.events[0].Elements)
	assert.Equal(t, "overflow", sink.events[1].ErrorKind)
	assert.Equal(t, "peek", sink.events[2].Command)
	assert.Equal(t, "s-1", d.Session())
}

func TestExecute_SinkFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := &recordingSink{err: errors.New("broker down")}
	d := newDispatcher(t, 2, WithSink(sink), WithLogger(zap.New(core)))

	res, err := d.Execute(context.Background(), "push", "1")
	require.NoError(t, err, "sink failures never fail the command")
	assert.Equal(t, []int64{1}, res.Elements)

	entries := logs.FilterMessage("publish event failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(1), entries[0].ContextMap()["seq"])
}

func TestDispatcher_Close(t *testing.T) {
	sink := &recordingSink{}
	d := newDispatcher(t, 2, WithSink(sink))
	require.NoError(t, d.Close())
	assert.True(t, sink.closed)
}

func TestSnapshot(t *testing.T) {
	sink := &recordingSink{}
	d := newDispatcher(t, 2, WithSink(sink))

	res := d.Snapshot()
	assert.True(t, res.Empty)
	assert.Equal(t, "The stack is empty.", res.Message)

	exec(t, d, "queue_enqueue", "4")
	res = d.Snapshot()
	assert.Equal(t, "Contents: 4", res.Message)
	assert.Equal(t, linear.ModeQueue, res.Mode)
	assert.Len(t, sink.events, 1, "snapshot does not publish")
}

func TestExecute_Serialized(t *testing.T) {
	d := newDispatcher(t, 100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = d.Execute(context.Background(), "push", "1")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, d.Snapshot().Size)
}
