package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrIngestLocationCommandIsNotConstructed = errors.New(
	"IngestLocationCommand must be created via NewIngestLocationCommand constructor",
)

// IngestLocationCommand carries one position report from a worker's device.
// Coordinate ranges are validated here, before anything is written.
type IngestLocationCommand struct { //nolint:recvcheck //using for validation
	workerID   kernel.UUID
	point      kernel.GeoPoint
	heading    *float64
	speed      *float64
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewIngestLocationCommand creates a command for one position report.
// Heading and speed are optional; a zero recordedAt defaults to the current
// time.
func NewIngestLocationCommand(
	workerID kernel.UUID,
	latitude float64,
	longitude float64,
	heading *float64,
	speed *float64,
	recordedAt time.Time,
) (IngestLocationCommand, error) {
	if err := workerID.Validate(); err != nil {
		return IngestLocationCommand{}, err
	}

	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return IngestLocationCommand{}, err
	}

	if heading != nil && (*heading < 0 || *heading >= 360) {
		return IngestLocationCommand{}, errs.NewValueIsOutOfRangeError("heading", *heading, 0, 360)
	}
	if speed != nil && *speed < 0 {
		return IngestLocationCommand{}, errs.NewValueIsOutOfRangeError("speed", *speed, 0, "unbounded")
	}

	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	return IngestLocationCommand{
		workerID:   workerID,
		point:      point,
		heading:    heading,
		speed:      speed,
		recordedAt: recordedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c IngestLocationCommand) Validate() error {
	return c.guard.Validate(ErrIngestLocationCommandIsNotConstructed)
}

// WorkerID returns the reporting worker.
func (c IngestLocationCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Point returns the reported coordinate.
func (c IngestLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// Heading returns the optional heading in degrees, or nil.
func (c IngestLocationCommand) Heading() *float64 {
	return c.heading
}

// Speed returns the optional speed in miles per hour, or nil.
func (c IngestLocationCommand) Speed() *float64 {
	return c.speed
}

// RecordedAt returns the report timestamp.
func (c IngestLocationCommand) RecordedAt() time.Time {
	return c.recordedAt
}
