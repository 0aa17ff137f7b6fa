// Package locationrepo persists the append-only history of worker location
// samples. Rows are only ever inserted; the live position lives on the worker
// aggregate and in the location cache, not here.
package locationrepo

import (
	"time"

	"dispatch/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// SampleDTO represents the database structure for one location sample.
type SampleDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	WorkerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_location_samples_worker_recorded,priority:1"`
	Latitude   float64   `gorm:"type:double precision"`
	Longitude  float64   `gorm:"type:double precision"`
	Heading    *float64  `gorm:"type:double precision"`
	Speed      *float64  `gorm:"type:double precision"`
	RecordedAt time.Time `gorm:"not null;index:idx_location_samples_worker_recorded,priority:2"`
}

// TableName specifies the database table name for location samples.
// Overrides GORM's default naming convention to use "location_samples".
func (SampleDTO) TableName() string {
	return "location_samples"
}

// fromDomain converts a location sample to its database representation.
func fromDomain(sample location.Sample) SampleDTO {
	return SampleDTO{
		WorkerID:   sample.WorkerID().Bytes(),
		Latitude:   sample.Point().Latitude(),
		Longitude:  sample.Point().Longitude(),
		Heading:    sample.Heading(),
		Speed:      sample.Speed(),
		RecordedAt: sample.RecordedAt(),
	}
}
