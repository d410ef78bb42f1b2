package events

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/shamaton/msgpack/v2"
)

// Codec serializes events for the wire.
type Codec interface {
	Marshal(ev *Event) ([]byte, error)
	Unmarshal(data []byte, ev *Event) error
	Name() string
}

// NewCodec returns the codec registered under name ("json" or "msgpack").
// An empty name selects json.
func NewCodec(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "", "json":
		return JSONCodec{}, nil
	case "msgpack":
		return MsgpackCodec{}, nil
	}
	return nil, errors.Errorf("unknown event codec %q", name)
}

type JSONCodec struct{}

func (JSONCodec) Marshal(ev *Event) ([]byte, error) {
	return json.Marshal(ev)
}

func (JSONCodec) Unmarshal(data []byte, ev *Event) error {
	return json.Unmarshal(data, ev)
}

func (JSONCodec) Name() string { return "json" }

// MsgpackCodec encodes events as MessagePack maps keyed by the msgpack tags.
type MsgpackCodec struct{}

func (MsgpackCodec) Marshal(ev *Event) ([]byte, error) {
	return msgpack.Marshal(ev)
}

func (MsgpackCodec) Unmarshal(data []byte, ev *Event) error {
	return msgpack.Unmarshal(data, ev)
}

func (MsgpackCodec) Name() string { return "msgpack" }
