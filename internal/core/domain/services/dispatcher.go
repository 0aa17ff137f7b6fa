package services

import (
	"errors"
	"math"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/worker"
)

// ErrWorkerNotFound is returned when no eligible worker exists for a booking,
// either because none were offered or because every candidate is offline, at
// capacity or has never reported a location.
var ErrWorkerNotFound = errors.New("worker not found")

// WorkerDispatcher is a domain service that selects the best worker for a
// pending booking. Selection is read-only; committing the assignment is the
// coordinator's job.
//
// The best worker is the eligible candidate with the shortest straight-line
// travel time to the booking location. Ties keep the first candidate.
type WorkerDispatcher struct {
	geo GeoService
}

// NewWorkerDispatcher creates a WorkerDispatcher using geo for travel
// estimates.
func NewWorkerDispatcher(geo GeoService) WorkerDispatcher {
	return WorkerDispatcher{geo: geo}
}

// SelectWorker picks the closest eligible worker for the booking.
//
// Candidates that are offline, at their concurrency limit or without a known
// position are skipped. ErrWorkerNotFound is returned when nothing remains.
func (d WorkerDispatcher) SelectWorker(b *booking.Booking, workers []*worker.Worker) (*worker.Worker, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	if b.Status() != booking.Pending {
		return nil, ErrWorkerNotFound
	}

	var (
		bestWorker  *worker.Worker
		bestMinutes = math.MaxInt
	)

	for _, w := range workers {
		if err := w.Validate(); err != nil {
			return nil, err
		}

		if w.CanAcceptAssignment() != nil {
			continue
		}

		position := w.Location()
		if position == nil {
			continue
		}

		minutes, err := d.geo.EstimateETA(*position, b.Location())
		if err != nil {
			return nil, err
		}

		if minutes < bestMinutes {
			bestMinutes = minutes
			bestWorker = w
		}
	}

	if bestWorker == nil {
		return nil, ErrWorkerNotFound
	}

	return bestWorker, nil
}
