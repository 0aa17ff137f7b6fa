package assignmentrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	bookingmodel "dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Add saves a new assignment to the database. Inserting a second record for
// the same booking fails on the primary key, which the coordinator treats as
// a retry signal rather than corruption.
func (r *GormAssignmentRepository) Add(ctx context.Context, record assignment.Assignment) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves a changed assignment, matched by booking id.
func (r *GormAssignmentRepository) Update(ctx context.Context, record assignment.Assignment) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	// Only the mirrored phase and the arrival estimate ever change; the
	// map form keeps a cleared estimate in the update set.
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("booking_id = ?", dto.BookingID).
		Updates(map[string]any{
			"status": dto.Status,
			"eta":    dto.Eta,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetByBooking retrieves the assignment for a booking.
func (r *GormAssignmentRepository) GetByBooking(ctx context.Context, bookingID kernel.UUID) (assignment.Assignment, error) {
	if err := bookingID.Validate(); err != nil {
		return assignment.Assignment{}, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "booking_id = ?", bookingID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assignment.Assignment{}, errs.NewObjectNotFoundError("assignment", bookingID.String())
		}
		return assignment.Assignment{}, err
	}

	return toDomain(dto)
}

// GetAllActiveByWorker retrieves the worker's assignments whose phase is not
// terminal.
func (r *GormAssignmentRepository) GetAllActiveByWorker(ctx context.Context, workerID kernel.UUID) ([]assignment.Assignment, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	terminal := []int{int(bookingmodel.Completed), int(bookingmodel.Cancelled)}
	if err := r.db.WithContext(ctx).
		Find(&dtos, "worker_id = ? AND status NOT IN ?", workerID.Bytes(), terminal).Error; err != nil {
		return nil, err
	}

	records := make([]assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Delete removes the assignment for a booking.
func (r *GormAssignmentRepository) Delete(ctx context.Context, bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&AssignmentDTO{}, "booking_id = ?", bookingID.Bytes()).Error
}
