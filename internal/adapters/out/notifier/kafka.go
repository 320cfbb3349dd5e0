// Package notifier publishes outbox messages to the collaborators that listen for
// load lifecycle transitions.
package notifier

import (
	"context"
	"fmt"

	"freight/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier writes every message to one topic, keyed by aggregate id so that the
// transitions of one load request stay in order within a partition.
type KafkaNotifier struct {
	writer messageWriter
	topic  string
}

func NewKafkaNotifier(brokers []string, topic string) (*KafkaNotifier, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}
	if topic == "" {
		return nil, fmt.Errorf("no kafka topic configured")
	}

	return NewKafkaNotifierWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}, topic), nil
}

// NewKafkaNotifierWithWriter is used by tests and by callers that tune their own writer.
func NewKafkaNotifierWithWriter(writer messageWriter, topic string) *KafkaNotifier {
	return &KafkaNotifier{writer: writer, topic: topic}
}

func (n *KafkaNotifier) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	err := n.writer.WriteMessages(ctx, kafka.Message{
		Topic: n.topic,
		Key:   []byte(msg.AggregateID.String()),
		Value: msg.Payload,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(msg.EventName)},
			{Key: "event-id", Value: []byte(msg.ID.String())},
		},
		Time: msg.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("kafka publish %s: %w", msg.EventName, err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
