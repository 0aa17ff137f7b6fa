package locationrepo

import (
	"context"

	"dispatch/internal/core/domain/model/location"

	"gorm.io/gorm"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Append writes one immutable location sample.
func (r *GormLocationRepository) Append(ctx context.Context, sample location.Sample) error {
	if err := sample.Validate(); err != nil {
		return err
	}

	dto := fromDomain(sample)
	return r.db.WithContext(ctx).Create(&dto).Error
}
