package events

import (
	"context"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-linear/pkg/settings"
	"github.com/huynhanx03/go-linear/pkg/utils"
)

const (
	DefaultTopic    = "linear-events"
	defaultClientID = "go-linear"
)

// KafkaSink writes events to a topic, keyed by session so that one session's
// events stay ordered within a partition.
type KafkaSink struct {
	producer sarama.SyncProducer
	topic    string
	codec    Codec
}

// NewKafkaSink wraps an existing producer.
func NewKafkaSink(producer sarama.SyncProducer, topic string, codec Codec) *KafkaSink {
	if topic == "" {
		topic = DefaultTopic
	}
	if codec == nil {
		codec = JSONCodec{}
	}
	return &KafkaSink{producer: producer, topic: topic, codec: codec}
}

// DialKafka creates a SyncProducer from cfg.
func DialKafka(cfg settings.Kafka) (sarama.SyncProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	producer, err := sarama.NewSyncProducer(cfg.Brokers, ProducerConfig(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "kafka: create producer")
	}
	return producer, nil
}

// ProducerConfig maps settings.Kafka onto a sarama configuration.
func ProducerConfig(cfg settings.Kafka) *sarama.Config {
	sc := sarama.NewConfig()
	sc.ClientID = cfg.ClientID
	if sc.ClientID == "" {
		sc.ClientID = defaultClientID
	}
	sc.Producer.Return.Successes = true
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Partitioner = sarama.NewHashPartitioner
	if cfg.MaxRetries > 0 {
		sc.Producer.Retry.Max = cfg.MaxRetries
	}
	if cfg.RetryBackoff > 0 {
		sc.Producer.Retry.Backoff = utils.ToDurationMs(cfg.RetryBackoff)
	}
	if cfg.Timeout > 0 {
		sc.Producer.Timeout = utils.ToDuration(cfg.Timeout)
		sc.Net.DialTimeout = utils.ToDuration(cfg.Timeout)
	}
	if cfg.MaxMessageBytes > 0 {
		sc.Producer.MaxMessageBytes = cfg.MaxMessageBytes
	}
	if cfg.FlushFrequency > 0 {
		sc.Producer.Flush.Frequency = utils.ToDurationMs(cfg.FlushFrequency)
	}
	if cfg.FlushBytes > 0 {
		sc.Producer.Flush.Bytes = cfg.FlushBytes
	}
	return sc
}

func (s *KafkaSink) Publish(_ context.Context, ev *Event) error {
	payload, err := s.codec.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "encode event")
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(ev.Session),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("codec"), Value: []byte(s.codec.Name())},
			{Key: []byte("seq"), Value: []byte(strconv.FormatUint(ev.Seq, 10))},
		},
	}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		return errors.Wrapf(err, "send to %s", s.topic)
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.producer.Close()
}
