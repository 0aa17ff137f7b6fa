// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetActiveBookingsQueryIsNotConstructed = errors.New(
		"GetActiveBookingsQuery must be created via NewGetActiveBookingsQuery constructor",
	)
)

// GetActiveBookingsQuery retrieves every booking that still needs attention:
// pending bookings waiting for a worker plus assigned, en_route and
// in_progress bookings. Completed and cancelled bookings are excluded.
//
// Example:
//
//	query := NewGetActiveBookingsQuery()
//	handler := NewGetActiveBookingsQueryHandler(db)
//
//	bookings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve bookings: %w", err)
//	}
type GetActiveBookingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveBookingsQuery creates a query to retrieve all open bookings.
// This is a parameterless query covering the whole active backlog.
func NewGetActiveBookingsQuery() GetActiveBookingsQuery {
	return GetActiveBookingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveBookingsQueryIsNotConstructed if validation fails.
func (q GetActiveBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveBookingsQueryIsNotConstructed)
}

// GetActiveBookingsQueryResponse represents one open booking in the read model.
// The status and service type carry their snake_case wire names, and the
// worker id is nil while the booking is still pending.
type GetActiveBookingsQueryResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	WorkerID    *kernel.UUID
	ServiceType string
	Status      string
	ScheduledAt time.Time
	Location    kernel.GeoPoint
	Price       float64
}
