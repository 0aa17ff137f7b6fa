// Package location contains the append-only LocationSample record written by
// the location tracker. Samples are immutable once written.
package location

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrSampleIsNotConstructed is returned when using an improperly
// initialized Sample.
var ErrSampleIsNotConstructed = errors.New("Sample must be created via NewSample constructor")

// Sample is one position report from a worker's device. Heading and speed
// are optional; heading is degrees clockwise from north, speed is miles per
// hour.
type Sample struct {
	workerID   kernel.UUID
	point      kernel.GeoPoint
	heading    *float64
	speed      *float64
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewSample creates an immutable location sample. Heading, when present,
// must lie in [0, 360); speed must not be negative.
func NewSample(
	workerID kernel.UUID,
	point kernel.GeoPoint,
	heading *float64,
	speed *float64,
	recordedAt time.Time,
) (Sample, error) {
	if err := errors.Join(workerID.Validate(), point.Validate()); err != nil {
		return Sample{}, err
	}
	if recordedAt.IsZero() {
		return Sample{}, errs.NewValueIsRequiredError("recordedAt")
	}
	if heading != nil && (*heading < 0 || *heading >= 360) {
		return Sample{}, errs.NewValueIsOutOfRangeError("heading", *heading, 0, 360)
	}
	if speed != nil && *speed < 0 {
		return Sample{}, errs.NewValueIsOutOfRangeError("speed", *speed, 0, "unbounded")
	}

	return Sample{
		workerID:   workerID,
		point:      point,
		heading:    heading,
		speed:      speed,
		recordedAt: recordedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Sample was created through NewSample.
func (s Sample) Validate() error {
	return s.guard.Validate(ErrSampleIsNotConstructed)
}

// WorkerID returns the reporting worker.
func (s Sample) WorkerID() kernel.UUID {
	return s.workerID
}

// Point returns the reported coordinate.
func (s Sample) Point() kernel.GeoPoint {
	return s.point
}

// Heading returns the optional heading in degrees, or nil.
func (s Sample) Heading() *float64 {
	return s.heading
}

// Speed returns the optional speed in miles per hour, or nil.
func (s Sample) Speed() *float64 {
	return s.speed
}

// RecordedAt returns the report timestamp.
func (s Sample) RecordedAt() time.Time {
	return s.recordedAt
}
