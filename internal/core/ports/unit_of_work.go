package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command so concurrent
// operations stay isolated.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary with repositories
// bound to it. Callers manage the transaction lifecycle explicitly.
//
// Repositories may also be used without Begin; they then run each statement
// standalone. The assignment coordinator relies on that mode, since its
// commit protocol is built on per-row conditional updates rather than a
// multi-row transaction.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// BookingRepository returns a BookingRepository bound to this unit of
	// work.
	BookingRepository() BookingRepository

	// WorkerRepository returns a WorkerRepository bound to this unit of
	// work.
	WorkerRepository() WorkerRepository

	// AssignmentRepository returns an AssignmentRepository bound to this
	// unit of work.
	AssignmentRepository() AssignmentRepository

	// LocationRepository returns a LocationRepository bound to this unit
	// of work.
	LocationRepository() LocationRepository
}
