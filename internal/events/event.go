// Package events publishes the post-operation state of a collection to
// external subscribers.
package events

import (
	"context"
	"errors"
	"time"
)

// Event is the state of the collection after one executed command.
type Event struct {
	ID        string    `json:"id" msgpack:"id"`
	Session   string    `json:"session" msgpack:"session"`
	Seq       uint64    `json:"seq" msgpack:"seq"`
	Command   string    `json:"command" msgpack:"command"`
	Mode      string    `json:"mode" msgpack:"mode"`
	Elements  []int64   `json:"elements" msgpack:"elements"`
	Size      int       `json:"size" msgpack:"size"`
	Capacity  int       `json:"capacity" msgpack:"capacity"`
	ErrorKind string    `json:"error_kind,omitempty" msgpack:"error_kind"`
	Message   string    `json:"message" msgpack:"message"`
	At        time.Time `json:"at" msgpack:"at"`
}

// Sink receives events.
type Sink interface {
	Publish(ctx context.Context, ev *Event) error
	Close() error
}

// NopSink drops every event.
type NopSink struct{}

func (NopSink) Publish(context.Context, *Event) error { return nil }
func (NopSink) Close() error                          { return nil }

// MultiSink fans an event out to every sink and joins their errors.
type MultiSink []Sink

func (m MultiSink) Publish(ctx context.Context, ev *Event) error {
	var errs []error
	for _, s := range m {
		if err := s.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
