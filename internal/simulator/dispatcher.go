// Package simulator maps user commands onto a bounded stack/queue and
// produces the post-operation view shown by presentation layers.
package simulator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-linear/internal/events"
	"github.com/huynhanx03/go-linear/pkg/datastructs/linear"
	"github.com/huynhanx03/go-linear/pkg/timer"
	"github.com/huynhanx03/go-linear/pkg/utils"
)

const defaultPublishTimeout = 2 * time.Second

// Dispatcher runs commands against one collection, one at a time.
type Dispatcher struct {
	mu   sync.Mutex
	coll *linear.Collection[int64]
	seq  uint64

	log            *zap.Logger
	sink           events.Sink
	session        string
	clock          timer.Timer
	publishTimeout time.Duration
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

func WithLogger(log *zap.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

func WithSink(sink events.Sink) Option {
	return func(d *Dispatcher) {
		if sink != nil {
			d.sink = sink
		}
	}
}

// WithSession sets the session id stamped on events. Empty keeps the generated id.
func WithSession(id string) Option {
	return func(d *Dispatcher) {
		if id != "" {
			d.session = id
		}
	}
}

func WithClock(clock timer.Timer) Option {
	return func(d *Dispatcher) {
		if clock != nil {
			d.clock = clock
		}
	}
}

func WithPublishTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.publishTimeout = timeout
		}
	}
}

// NewDispatcher creates a Dispatcher owning coll.
func NewDispatcher(coll *linear.Collection[int64], opts ...Option) *Dispatcher {
	d := &Dispatcher{
		coll:           coll,
		log:            zap.NewNop(),
		sink:           events.NopSink{},
		session:        uuid.NewString(),
		clock:          timer.System(),
		publishTimeout: defaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.With(zap.String("session", d.session))
	return d
}

// Session returns the session id stamped on published events.
func (d *Dispatcher) Session() string {
	return d.session
}

// Execute runs the named command with an optional raw value.
//
// Domain failures return the typed error from the linear package together
// with a Result describing the unchanged state and the failure status line.
// Unknown commands return ErrUnknownCommand and publish nothing.
func (d *Dispatcher) Execute(ctx context.Context, name, value string) (*Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	cmd, err := ParseCommand(name)
	if err != nil {
		res := d.snapshot(name)
		res.Message = StatusLine(d.coll.Mode(), err)
		d.log.Debug("unknown command", zap.String("command", name))
		return res, err
	}

	if cmd.Mode != "" {
		d.coll.SetMode(cmd.Mode)
	}

	res, opErr := d.run(cmd, value)
	d.fill(res)
	if opErr != nil {
		res.ErrorKind = linear.KindOf(opErr).String()
		res.Message = StatusLine(d.coll.Mode(), opErr)
		if cmd.Op == OpSetMode {
			res.Message = fmt.Sprintf("Unknown mode %q: use stack or queue.", value)
		}
	}

	d.log.Debug("command executed",
		zap.String("command", cmd.Name),
		zap.Stringer("mode", d.coll.Mode()),
		zap.Int("size", res.Size),
		zap.Error(opErr),
	)
	d.publish(ctx, res)

	return res, opErr
}

// Snapshot returns the current state without running a command.
func (d *Dispatcher) Snapshot() *Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	res := d.snapshot(OpDisplay.String())
	if res.Empty {
		res.Message = EmptyLine(res.Mode)
	} else {
		res.Message = "Contents: " + utils.JoinInts(res.Elements, ", ")
	}
	return res
}

// Close releases the event sink.
func (d *Dispatcher) Close() error {
	return d.sink.Close()
}

func (d *Dispatcher) run(cmd Command, value string) (*Result, error) {
	c := d.coll
	res := &Result{Command: cmd.Name}

	switch cmd.Op {
	case OpInsert:
		seq, err := c.InsertRaw(value)
		if err != nil {
			return res, err
		}
		v := seq[len(seq)-1]
		res.Value = int64Ptr(v)
		res.Message = insertLine(c.Mode(), v)

	case OpRemove:
		v, err := c.Remove()
		if err != nil {
			return res, err
		}
		res.Value = int64Ptr(v)
		res.Message = removeLine(c.Mode(), v)

	case OpPeek:
		p, err := c.Peek()
		if err != nil {
			return res, err
		}
		if p.Mode == linear.ModeQueue {
			front, rear := p.Ends()
			res.Front, res.Rear = int64Ptr(front), int64Ptr(rear)
			res.Message = fmt.Sprintf("Front: %d, Rear: %d", front, rear)
		} else {
			res.Value = int64Ptr(p.Top())
			res.Message = fmt.Sprintf("Top: %d", p.Top())
		}

	case OpSize:
		res.Value = int64Ptr(int64(c.Size()))
		res.Message = fmt.Sprintf("Size: %d of %d", c.Size(), c.Capacity())

	case OpCapacity:
		res.Value = int64Ptr(int64(c.Capacity()))
		res.Message = fmt.Sprintf("Capacity: %d", c.Capacity())

	case OpRemaining:
		res.Value = int64Ptr(int64(c.Remaining()))
		res.Message = fmt.Sprintf("Remaining capacity: %d", c.Remaining())

	case OpDisplay:
		if all, ok := c.DisplayAll(); ok {
			res.Message = "Contents: " + utils.JoinInts(all, ", ")
		} else {
			res.Message = EmptyLine(c.Mode())
		}

	case OpIsEmpty:
		res.Flag = boolPtr(c.IsEmpty())
		if c.IsEmpty() {
			res.Message = EmptyLine(c.Mode())
		} else {
			res.Message = fmt.Sprintf("The %s is not empty.", c.Mode())
		}

	case OpIsFull:
		res.Flag = boolPtr(c.IsFull())
		if c.IsFull() {
			res.Message = fmt.Sprintf("The %s is full.", c.Mode())
		} else {
			res.Message = fmt.Sprintf("The %s is not full.", c.Mode())
		}

	case OpSetMode:
		m, err := linear.ParseMode(value)
		if err != nil {
			return res, err
		}
		c.SetMode(m)
		res.Message = fmt.Sprintf("Mode set to %s.", m)
	}

	return res, nil
}

func (d *Dispatcher) snapshot(command string) *Result {
	res := &Result{Command: command}
	d.fill(res)
	return res
}

// fill copies the collection state into res.
func (d *Dispatcher) fill(res *Result) {
	c := d.coll
	all, ok := c.DisplayAll()
	if !ok {
		all = []int64{}
	}
	res.Mode = c.Mode()
	res.Elements = all
	res.Empty = !ok
	res.Size = c.Size()
	res.Capacity = c.Capacity()
	res.Remaining = c.Remaining()
	res.Full = c.IsFull()
}

func (d *Dispatcher) publish(ctx context.Context, res *Result) {
	d.seq++
	ev := &events.Event{
		ID:        uuid.NewString(),
		Session:   d.session,
		Seq:       d.seq,
		Command:   res.Command,
		Mode:      res.Mode.String(),
		Elements:  res.Elements,
		Size:      res.Size,
		Capacity:  res.Capacity,
		ErrorKind: res.ErrorKind,
		Message:   res.Message,
		At:        d.clock.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, d.publishTimeout)
	defer cancel()
	if err := d.sink.Publish(ctx, ev); err != nil {
		d.log.Warn("publish event failed", zap.Uint64("seq", ev.Seq), zap.Error(err))
	}
}
