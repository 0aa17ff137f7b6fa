package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableWorkersQueryHandler retrieves dispatchable workers from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetAvailableWorkersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableWorkersQueryHandler creates a handler for worker availability queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableWorkersQueryHandler(db *gorm.DB) GetAvailableWorkersQueryHandler {
	return GetAvailableWorkersQueryHandler{db: db}
}

// Handle executes the query to retrieve all dispatchable workers.
// Returns a slice of worker read models sorted by current load, least
// loaded first. Converts database types to domain types for consistency.
func (h GetAvailableWorkersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableWorkersQuery,
) ([]GetAvailableWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workers := make([]GetAvailableWorkersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			latitude,
			longitude,
			location_updated_at,
			active_jobs,
			max_concurrent_jobs
		FROM workers
		WHERE status <> ? AND active_jobs < max_concurrent_jobs
		ORDER BY active_jobs, id
	`, int(worker.Offline)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAvailableWorkersQueryResponse
		var id uuid.UUID
		var status int
		var latitude, longitude *float64
		var locationUpdatedAt *time.Time

		err = rows.Scan(
			&id,
			&status,
			&latitude,
			&longitude,
			&locationUpdatedAt,
			&response.ActiveJobs,
			&response.MaxConcurrentJobs,
		)
		if err != nil {
			return nil, err
		}

		workerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = workerID
		response.Status = worker.Status(status).String()
		response.LocationUpdatedAt = locationUpdatedAt

		if latitude != nil && longitude != nil {
			location, locErr := kernel.NewGeoPoint(*latitude, *longitude)
			if locErr != nil {
				return nil, locErr
			}
			response.Location = &location
		}

		workers = append(workers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}
