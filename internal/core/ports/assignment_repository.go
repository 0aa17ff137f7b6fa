package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignment
// records. Storage must hold bookings unique: at most one assignment row
// exists per booking, which makes the coordinator's commit safe to retry.
type AssignmentRepository interface {
	// Add persists a new assignment. Adding a second assignment for the
	// same booking returns an error from the underlying uniqueness
	// constraint.
	Add(ctx context.Context, record assignment.Assignment) error

	// Update persists a changed assignment, matched by booking id.
	Update(ctx context.Context, record assignment.Assignment) error

	// GetByBooking retrieves the assignment for a booking. Returns
	// ObjectNotFoundError when none exists.
	GetByBooking(ctx context.Context, bookingID kernel.UUID) (assignment.Assignment, error)

	// GetAllActiveByWorker retrieves the worker's assignments whose phase
	// is not terminal.
	GetAllActiveByWorker(ctx context.Context, workerID kernel.UUID) ([]assignment.Assignment, error)

	// Delete removes the assignment for a booking. Used only by the
	// coordinator's compensation path.
	Delete(ctx context.Context, bookingID kernel.UUID) error
}
