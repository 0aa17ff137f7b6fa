// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow the same shape: a validated command
// object, a handler owning transaction management, explicit error returns.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest interface covering the
// repositories they touch.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookingRepoFactory provides access to the booking repository within
	// a unit of work.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// WorkerRepoFactory provides access to the worker repository within a
	// unit of work.
	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository
	// within a unit of work.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// LocationRepoFactory provides access to the location-sample
	// repository within a unit of work.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// BookingUoW manages transactions for booking-only operations.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
	}

	// BookingUoWFactory creates booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// WorkerUoW manages transactions for worker-only operations.
	WorkerUoW interface {
		TxManager
		WorkerRepoFactory
	}

	// WorkerUoWFactory creates worker unit of work instances.
	WorkerUoWFactory interface {
		Create() WorkerUoW
	}

	// TrackingUoW covers location ingestion: the worker position, the
	// sample log and the worker's en-route bookings.
	TrackingUoW interface {
		TxManager
		WorkerRepoFactory
		LocationRepoFactory
		BookingRepoFactory
	}

	// TrackingUoWFactory creates tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// UoW manages operations spanning bookings, workers and assignments.
	UoW interface {
		TxManager
		BookingRepoFactory
		WorkerRepoFactory
		AssignmentRepoFactory
	}

	// UoWFactory creates cross-aggregate unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
