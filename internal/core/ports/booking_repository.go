// Package ports defines the contracts between the domain layer and
// infrastructure adapters: repositories, the unit of work, event
// publishing and the optional routing and cache collaborators.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// Add persists a new booking aggregate.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking aggregate.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking by id. Returns ObjectNotFoundError when the
	// id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetFirstPending retrieves the oldest booking still in pending status.
	// Used by the auto-dispatch job. Returns ObjectNotFoundError when no
	// pending booking exists.
	GetFirstPending(ctx context.Context) (*booking.Booking, error)

	// GetAllActive retrieves every booking in a non-terminal status past
	// pending (assigned, en_route or in_progress).
	GetAllActive(ctx context.Context) ([]*booking.Booking, error)

	// GetAllEnRouteByWorker retrieves the worker's bookings currently in
	// en_route status. Used by the location tracker to refresh ETAs.
	GetAllEnRouteByWorker(ctx context.Context, workerID kernel.UUID) ([]*booking.Booking, error)

	// AssignWorker performs the conditional assignment write: it sets the
	// worker reference and moves the booking to assigned in a single update
	// that succeeds only while the row still has no worker and is still
	// pending. Returns false without error when another caller won the
	// race.
	AssignWorker(ctx context.Context, bookingID kernel.UUID, workerID kernel.UUID) (bool, error)

	// RevertAssignment compensates a failed assignment: it clears the
	// worker reference and moves the booking back to pending, conditional
	// on the row still carrying exactly this worker in assigned status.
	// Returns false without error when the row no longer matches.
	RevertAssignment(ctx context.Context, bookingID kernel.UUID, workerID kernel.UUID) (bool, error)
}
