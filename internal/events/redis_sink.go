package events

import (
	"context"

	"github.com/pkg/errors"
)

const DefaultChannel = "linear.events"

// publisher is satisfied by *redis.RedisEngine.
type publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	Close() error
}

// RedisSink publishes events on a Redis pub/sub channel.
type RedisSink struct {
	pub     publisher
	channel string
	codec   Codec
}

func NewRedisSink(pub publisher, channel string, codec Codec) *RedisSink {
	if channel == "" {
		channel = DefaultChannel
	}
	if codec == nil {
		codec = JSONCodec{}
	}
	return &RedisSink{pub: pub, channel: channel, codec: codec}
}

func (s *RedisSink) Publish(ctx context.Context, ev *Event) error {
	payload, err := s.codec.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "encode event")
	}
	return errors.Wrapf(s.pub.Publish(ctx, s.channel, payload), "publish to %s", s.channel)
}

func (s *RedisSink) Close() error {
	return s.pub.Close()
}
