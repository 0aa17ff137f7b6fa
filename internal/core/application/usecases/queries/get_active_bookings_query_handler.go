package queries

import (
	"context"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveBookingsQueryHandler retrieves the active booking backlog from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetActiveBookingsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveBookingsQueryHandler creates a handler for active booking queries.
// Requires a GORM database connection for query execution.
func NewGetActiveBookingsQueryHandler(db *gorm.DB) GetActiveBookingsQueryHandler {
	return GetActiveBookingsQueryHandler{db: db}
}

// Handle executes the query to retrieve all open bookings.
// Returns a slice of booking read models sorted by scheduled time.
// Converts database types to domain types for consistency.
func (h GetActiveBookingsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveBookingsQuery,
) ([]GetActiveBookingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bookings := make([]GetActiveBookingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			worker_id,
			service_type,
			status,
			scheduled_at,
			location_latitude,
			location_longitude,
			price
		FROM bookings
		WHERE status IN (?, ?, ?, ?)
		ORDER BY scheduled_at
	`,
		int(booking.Pending),
		int(booking.Assigned),
		int(booking.EnRoute),
		int(booking.InProgress),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetActiveBookingsQueryResponse
		var id, customerID uuid.UUID
		var workerID *uuid.UUID
		var status int
		var latitude, longitude float64

		err = rows.Scan(
			&id,
			&customerID,
			&workerID,
			&response.ServiceType,
			&status,
			&response.ScheduledAt,
			&latitude,
			&longitude,
			&response.Price,
		)
		if err != nil {
			return nil, err
		}

		bookingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = bookingID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.CustomerID = custID

		if workerID != nil {
			wID, idErr := kernel.UUIDFromBytes((*workerID)[:])
			if idErr != nil {
				return nil, idErr
			}
			response.WorkerID = &wID
		}

		location, locErr := kernel.NewGeoPoint(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}
		response.Location = location
		response.Status = booking.Status(status).String()

		bookings = append(bookings, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
