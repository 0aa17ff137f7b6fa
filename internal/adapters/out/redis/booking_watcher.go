package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"dispatch/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// bookingChannelPrefix namespaces the per-booking pub/sub channels.
const bookingChannelPrefix = "dispatch:booking:events:"

// BookingEventBus carries booking events over Redis pub/sub. It is both a
// ports.EventPublisher (the dispatch side fans events out here next to
// Kafka) and a ports.BookingObserver (the customer-facing side subscribes
// per booking). Pub/sub delivery is at-most-once, which matches the
// best-effort contract of the event ports.
type BookingEventBus struct {
	client *redis.Client
	logger *slog.Logger
}

// NewBookingEventBus creates a bus over the given client.
func NewBookingEventBus(client *redis.Client, logger *slog.Logger) *BookingEventBus {
	return &BookingEventBus{
		client: client,
		logger: logger.With("component", "booking-event-bus"),
	}
}

// eventDTO is the wire form of an event on the channel.
type eventDTO struct {
	Type      string         `json:"type"`
	BookingID string         `json:"bookingId"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// Publish sends the event to the booking's channel. Subscribers that are
// not connected at publish time never see the event.
func (b *BookingEventBus) Publish(ctx context.Context, event ports.Event) error {
	value, err := json.Marshal(eventDTO{
		Type:      event.Type,
		BookingID: event.BookingID,
		Payload:   event.Payload,
	})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}

	return b.client.Publish(ctx, bookingChannelPrefix+event.BookingID, value).Err()
}

// Subscribe registers callback for every event about bookingID. The
// callback runs on the subscription's receive goroutine; undecodable
// messages are logged and skipped.
func (b *BookingEventBus) Subscribe(ctx context.Context, bookingID string, callback func(ports.Event)) (ports.UnsubscribeFunc, error) {
	sub := b.client.Subscribe(ctx, bookingChannelPrefix+bookingID)

	// Force the subscription onto the wire before returning, so events
	// published right after Subscribe are not lost.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe to booking %s: %w", bookingID, err)
	}

	go func() {
		for msg := range sub.Channel() {
			var dto eventDTO
			if err := json.Unmarshal([]byte(msg.Payload), &dto); err != nil {
				b.logger.Warn("dropping undecodable booking event",
					"bookingId", bookingID, "error", err)
				continue
			}

			callback(ports.Event{
				Type:      dto.Type,
				BookingID: dto.BookingID,
				Payload:   dto.Payload,
			})
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			if err := sub.Close(); err != nil {
				b.logger.Warn("closing booking subscription",
					"bookingId", bookingID, "error", err)
			}
		})
	}, nil
}
