// Package workerrepo provides data transfer objects and mapping functions for worker persistence.
// This package implements the repository pattern for the worker domain aggregate, handling
// the conversion between domain entities and database representations.
package workerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

// WorkerDTO represents the database structure for persisting worker aggregates.
// The active-job counter lives in the row itself so capacity can be reserved
// with a single conditional update.
type WorkerDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Status            int       `gorm:"index"`
	Latitude          *float64  `gorm:"type:double precision"`
	Longitude         *float64  `gorm:"type:double precision"`
	LocationUpdatedAt *time.Time
	ActiveJobs        int `gorm:"not null;default:0"`
	MaxConcurrentJobs int `gorm:"not null"`
}

// TableName specifies the database table name for worker entities.
// Overrides GORM's default naming convention to use "workers".
func (WorkerDTO) TableName() string {
	return "workers"
}

// fromDomain converts a worker domain aggregate to its database representation.
func fromDomain(w *worker.Worker) WorkerDTO {
	var lat, lng *float64
	if loc := w.Location(); loc != nil {
		latitude := loc.Latitude()
		longitude := loc.Longitude()
		lat = &latitude
		lng = &longitude
	}

	return WorkerDTO{
		ID:                w.ID().Bytes(),
		ProfileID:         w.ProfileID().Bytes(),
		Status:            int(w.Status()),
		Latitude:          lat,
		Longitude:         lng,
		LocationUpdatedAt: w.LocationUpdatedAt(),
		ActiveJobs:        w.ActiveJobs(),
		MaxConcurrentJobs: w.MaxConcurrentJobs(),
	}
}

// toDomain converts a database DTO to a worker domain aggregate.
// Reconstructs the complete aggregate including its capacity counter using RestoreWorker.
func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	profileID, err := kernel.UUIDFromBytes(dto.ProfileID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}

		location = &point
	}

	return worker.RestoreWorker(
		id,
		profileID,
		worker.Status(dto.Status),
		location,
		dto.LocationUpdatedAt,
		dto.ActiveJobs,
		dto.MaxConcurrentJobs,
	)
}
