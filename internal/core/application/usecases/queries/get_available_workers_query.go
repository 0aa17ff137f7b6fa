package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetAvailableWorkersQueryIsNotConstructed = errors.New(
		"GetAvailableWorkersQuery must be created via NewGetAvailableWorkersQuery constructor",
	)
)

// GetAvailableWorkersQuery retrieves every worker that could take another
// job: not offline and with spare capacity under the concurrency limit.
// Returns worker identities, positions and load for monitoring and dispatch.
type GetAvailableWorkersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableWorkersQuery creates a query to retrieve dispatchable workers.
// This is a parameterless query that fetches the complete candidate list.
func NewGetAvailableWorkersQuery() GetAvailableWorkersQuery {
	return GetAvailableWorkersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableWorkersQueryIsNotConstructed if validation fails.
func (q GetAvailableWorkersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableWorkersQueryIsNotConstructed)
}

// GetAvailableWorkersQueryResponse represents one dispatchable worker in the
// read model. Location fields are nil for workers that have never reported a
// position.
type GetAvailableWorkersQueryResponse struct {
	ID                kernel.UUID
	Status            string
	Location          *kernel.GeoPoint
	LocationUpdatedAt *time.Time
	ActiveJobs        int
	MaxConcurrentJobs int
}
