package producer

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/messaging/kafka"
)

// Events are keyed by aggregate so transitions of one run stay ordered
// within a partition.
func publishEvent(ctx context.Context, writer *kafkago.Writer, event kafka.OutboxEvent) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
