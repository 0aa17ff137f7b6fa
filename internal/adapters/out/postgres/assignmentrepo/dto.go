// Package assignmentrepo provides data transfer objects and mapping functions for
// assignment persistence. The booking id is the primary key, so the database
// itself enforces the one-assignment-per-booking rule the dispatch commit
// protocol relies on.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	bookingmodel "dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment records.
type AssignmentDTO struct {
	BookingID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     int       `gorm:"index"`
	AssignedAt time.Time `gorm:"not null"`
	Eta        *time.Time
}

// TableName specifies the database table name for assignment entities.
// Overrides GORM's default naming convention to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment record to its database representation.
func fromDomain(record assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		BookingID:  record.BookingID().Bytes(),
		WorkerID:   record.WorkerID().Bytes(),
		Status:     int(record.Status()),
		AssignedAt: record.AssignedAt(),
		Eta:        record.ETA(),
	}
}

// toDomain converts a database DTO to an assignment record using RestoreAssignment.
func toDomain(dto AssignmentDTO) (assignment.Assignment, error) {
	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return assignment.Assignment{}, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return assignment.Assignment{}, err
	}

	record, err := assignment.RestoreAssignment(
		bookingID,
		workerID,
		bookingmodel.Status(dto.Status),
		dto.AssignedAt,
		dto.Eta,
	)
	if err != nil {
		return assignment.Assignment{}, err
	}

	return *record, nil
}
