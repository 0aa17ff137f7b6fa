// Package bookingrepo provides data transfer objects and mapping functions for booking persistence.
// This package implements the repository pattern for the booking domain aggregate, handling
// the conversion between domain entities and database representations.
package bookingrepo

import (
	"time"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO represents the database structure for persisting booking aggregates.
// Maps booking domain entities to relational database tables with indexing for
// efficient querying by status and worker assignment.
type BookingDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID   `gorm:"type:uuid;not null;index"`
	WorkerID    *uuid.UUID  `gorm:"type:uuid;index"`
	ServiceType string      `gorm:"type:varchar(32);not null"`
	ScheduledAt time.Time   `gorm:"not null"`
	Location    GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status      int         `gorm:"index"`
	Price       float64
	AddOnIDs    []string `gorm:"column:add_on_ids;serializer:json;type:jsonb"`
	Recurring   bool
	Notes       string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for booking entities.
// Overrides GORM's default naming convention to use "bookings".
func (BookingDTO) TableName() string {
	return "bookings"
}

// GeoPointDTO represents the embedded service-address coordinates within the booking table.
type GeoPointDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// fromDomain converts a booking domain aggregate to its database representation.
// Maps all booking attributes including the optional worker assignment.
func fromDomain(b *booking.Booking) BookingDTO {
	var workerID *uuid.UUID
	if id := b.Worker(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	return BookingDTO{
		ID:          b.ID().Bytes(),
		CustomerID:  b.CustomerID().Bytes(),
		WorkerID:    workerID,
		ServiceType: b.ServiceType().String(),
		ScheduledAt: b.ScheduledAt(),
		Location: GeoPointDTO{
			Latitude:  b.Location().Latitude(),
			Longitude: b.Location().Longitude(),
		},
		Status:    int(b.Status()),
		Price:     b.Price(),
		AddOnIDs:  b.AddOnIDs(),
		Recurring: b.IsRecurring(),
		Notes:     b.Notes(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a booking domain aggregate.
// Reconstructs the complete aggregate including status and worker assignment using RestoreBooking.
func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}

		workerID = &wID
	}

	loc, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(
		id,
		customerID,
		workerID,
		booking.ServiceType(dto.ServiceType),
		dto.ScheduledAt,
		loc,
		booking.Status(dto.Status),
		dto.Price,
		dto.AddOnIDs,
		dto.Recurring,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
