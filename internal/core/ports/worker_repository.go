package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for worker aggregates.
type WorkerRepository interface {
	// Add persists a new worker aggregate.
	Add(ctx context.Context, aggregate *worker.Worker) error

	// Update persists changes to an existing worker aggregate.
	Update(ctx context.Context, aggregate *worker.Worker) error

	// Get retrieves a worker by id. Returns ObjectNotFoundError when the
	// id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	// GetAllAvailable retrieves every worker that is not offline and has
	// spare capacity under its concurrency limit.
	GetAllAvailable(ctx context.Context) ([]*worker.Worker, error)

	// ReserveCapacity increments the worker's active-job counter with a
	// conditional update that succeeds only while the worker is not
	// offline and the counter is below its limit. Returns false without
	// error when the condition no longer holds.
	ReserveCapacity(ctx context.Context, id kernel.UUID) (bool, error)

	// ReleaseCapacity decrements the worker's active-job counter, never
	// below zero.
	ReleaseCapacity(ctx context.Context, id kernel.UUID) error
}
