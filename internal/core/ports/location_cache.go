package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// LiveLocation is the cached last-known position of a worker.
type LiveLocation struct {
	WorkerID   kernel.UUID
	Point      kernel.GeoPoint
	RecordedAt time.Time
}

// LocationCache keeps the latest worker positions in a fast store for
// dashboard reads. It is best-effort: a cache failure never fails location
// ingestion.
type LocationCache interface {
	// Set stores the worker's latest position.
	Set(ctx context.Context, live LiveLocation) error

	// Get returns the worker's latest cached position. Returns
	// ObjectNotFoundError when nothing is cached.
	Get(ctx context.Context, workerID kernel.UUID) (LiveLocation, error)
}
