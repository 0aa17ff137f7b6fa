// Package kafka publishes dispatch events to a Kafka topic. Events are
// fire-and-forget from the caller's point of view: command handlers log
// publish failures and move on, so delivery here is best effort.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the slice of kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher implements ports.EventPublisher on top of a kafka-go writer.
// Messages are keyed by booking id so all events of one booking land in the
// same partition and stay ordered.
type Publisher struct {
	writer messageWriter
}

// NewPublisher creates a publisher over an already configured writer.
func NewPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// NewWriter builds the kafka writer the publisher is normally run with.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// envelope is the wire form of a dispatch event.
type envelope struct {
	Type      string         `json:"type"`
	BookingID string         `json:"bookingId"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// Publish writes one event to the topic.
func (p *Publisher) Publish(ctx context.Context, event ports.Event) error {
	value, err := json.Marshal(envelope{
		Type:      event.Type,
		BookingID: event.BookingID,
		Payload:   event.Payload,
	})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.BookingID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}

	return nil
}
