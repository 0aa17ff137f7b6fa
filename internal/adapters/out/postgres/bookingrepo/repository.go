package bookingrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBookingRepository implements BookingRepository using GORM.
type GormBookingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBookingRepository creates a new GORM booking repository.
func NewGormBookingRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new booking to the database.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
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

// Update saves an existing booking to the database.
func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Only mutable columns are written. The map form keeps cleared worker
	// references in the update set, which a struct-based Updates would
	// skip as zero values.
	result := r.db.WithContext(ctx).Model(&BookingDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"worker_id":    dto.WorkerID,
		"status":       dto.Status,
		"scheduled_at": dto.ScheduledAt,
		"price":        dto.Price,
		"recurring":    dto.Recurring,
		"notes":        dto.Notes,
		"updated_at":   dto.UpdatedAt,
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

// Get retrieves a booking by ID.
func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstPending retrieves the oldest booking still waiting for a worker.
func (r *GormBookingRepository) GetFirstPending(ctx context.Context) (*booking.Booking, error) {
	var dto BookingDTO
	if err := r.db.WithContext(ctx).
		Order("created_at asc").
		First(&dto, "status = ?", int(booking.Pending)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", "first in pending status")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every booking in assigned, en_route or in_progress status.
func (r *GormBookingRepository) GetAllActive(ctx context.Context) ([]*booking.Booking, error) {
	var dtos []BookingDTO
	statuses := []int{int(booking.Assigned), int(booking.EnRoute), int(booking.InProgress)}
	if err := r.db.WithContext(ctx).Find(&dtos, "status IN ?", statuses).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllEnRouteByWorker retrieves the worker's bookings currently in en_route status.
func (r *GormBookingRepository) GetAllEnRouteByWorker(ctx context.Context, workerID kernel.UUID) ([]*booking.Booking, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BookingDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "worker_id = ? AND status = ?", workerID.Bytes(), int(booking.EnRoute)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// AssignWorker claims the booking for a worker with a single conditional
// update. The WHERE clause makes the write atomic: only one of several
// concurrent callers can match a row that is still pending and unclaimed.
func (r *GormBookingRepository) AssignWorker(ctx context.Context, bookingID kernel.UUID, workerID kernel.UUID) (bool, error) {
	if err := errors.Join(bookingID.Validate(), workerID.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&BookingDTO{}).
		Where("id = ? AND worker_id IS NULL AND status = ?", bookingID.Bytes(), int(booking.Pending)).
		Updates(map[string]any{
			"worker_id":  workerID.Bytes(),
			"status":     int(booking.Assigned),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// RevertAssignment undoes a claim made by AssignWorker, conditional on the
// row still carrying exactly this worker in assigned status.
func (r *GormBookingRepository) RevertAssignment(ctx context.Context, bookingID kernel.UUID, workerID kernel.UUID) (bool, error) {
	if err := errors.Join(bookingID.Validate(), workerID.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&BookingDTO{}).
		Where("id = ? AND worker_id = ? AND status = ?", bookingID.Bytes(), workerID.Bytes(), int(booking.Assigned)).
		Updates(map[string]any{
			"worker_id":  nil,
			"status":     int(booking.Pending),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func toDomainSlice(dtos []BookingDTO) ([]*booking.Booking, error) {
	bookings := make([]*booking.Booking, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}
