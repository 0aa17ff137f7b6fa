package workerrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkerRepository implements WorkerRepository using GORM.
type GormWorkerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkerRepository creates a new GORM worker repository.
func NewGormWorkerRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkerRepository {
	return &GormWorkerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new worker to the database.
func (r *GormWorkerRepository) Add(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing worker to the database.
func (r *GormWorkerRepository) Update(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// The map form keeps nil coordinates in the update set, which a
	// struct-based Updates would skip as zero values.
	result := r.db.WithContext(ctx).Model(&WorkerDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":              dto.Status,
		"latitude":            dto.Latitude,
		"longitude":           dto.Longitude,
		"location_updated_at": dto.LocationUpdatedAt,
		"active_jobs":         dto.ActiveJobs,
		"max_concurrent_jobs": dto.MaxConcurrentJobs,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a worker by ID.
func (r *GormWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves every worker that is not offline and still has
// spare capacity under its concurrency limit.
func (r *GormWorkerRepository) GetAllAvailable(ctx context.Context) ([]*worker.Worker, error) {
	var dtos []WorkerDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status <> ? AND active_jobs < max_concurrent_jobs", int(worker.Offline)).Error; err != nil {
		return nil, err
	}

	workers := make([]*worker.Worker, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}

	return workers, nil
}

// ReserveCapacity increments the worker's active-job counter with a single
// conditional update. The WHERE clause enforces the capacity limit at the
// row level, so concurrent reservations cannot overshoot it.
func (r *GormWorkerRepository) ReserveCapacity(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&WorkerDTO{}).
		Where("id = ? AND status <> ? AND active_jobs < max_concurrent_jobs", id.Bytes(), int(worker.Offline)).
		UpdateColumn("active_jobs", gorm.Expr("active_jobs + 1"))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// ReleaseCapacity decrements the worker's active-job counter, never below
// zero. Releasing an already-zero counter is a no-op, which keeps the
// coordinator's compensation path idempotent.
func (r *GormWorkerRepository) ReleaseCapacity(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&WorkerDTO{}).
		Where("id = ? AND active_jobs > 0", id.Bytes()).
		UpdateColumn("active_jobs", gorm.Expr("active_jobs - 1")).Error
}
