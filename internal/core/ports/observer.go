package ports

import (
	"context"
)

// UnsubscribeFunc tears down one subscription. Safe to call more than once.
type UnsubscribeFunc func()

// BookingObserver lets callers watch a booking for events published about
// it. The callback runs on the transport's goroutine; implementations make
// no ordering guarantees across bookings.
type BookingObserver interface {
	// Subscribe registers callback for every event about bookingID and
	// returns a handle that cancels the subscription.
	Subscribe(ctx context.Context, bookingID string, callback func(Event)) (UnsubscribeFunc, error)
}
