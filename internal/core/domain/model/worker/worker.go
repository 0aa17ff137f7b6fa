package worker

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// DefaultMaxConcurrentJobs is the default concurrent-job limit applied when
// configuration supplies nothing else. Exactly one job at a time is the
// conservative product default.
const DefaultMaxConcurrentJobs = 1

// Domain errors for worker operations.
var (
	// ErrWorkerIsNotConstructed is returned when using an improperly
	// initialized Worker.
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")
	// ErrWorkerIsOffline marks the offline case inside a CapacityError.
	ErrWorkerIsOffline = errors.New("worker is offline")
)

// Worker represents a service provider who can be assigned to bookings.
// It is an aggregate root managing the worker's availability status, last
// known position, and concurrent-job counter.
//
// Invariants:
//   - the active-job counter never exceeds the configured concurrency limit
//   - an offline worker is never an assignment target
//   - the position, when set, is a validated coordinate with its update time
type Worker struct {
	// id uniquely identifies the worker
	id kernel.UUID
	// profileID references the worker's profile record (external concern)
	profileID kernel.UUID
	// status is the caller-directed availability state
	status Status
	// location is the last reported position (nil until first report)
	location *kernel.GeoPoint
	// locationUpdatedAt is the time of the last position report
	locationUpdatedAt *time.Time
	// activeJobs counts assignments currently held by the worker
	activeJobs int
	// maxConcurrentJobs is the configured concurrency limit
	maxConcurrentJobs int

	guard guard.ConstructorGuard
}

// NewWorker creates a worker with the given initial status. Onboarding
// creates workers as offline or available; any other initial status is
// rejected. maxConcurrentJobs must be positive; pass
// DefaultMaxConcurrentJobs when configuration does not override it.
func NewWorker(
	id kernel.UUID,
	profileID kernel.UUID,
	initialStatus Status,
	maxConcurrentJobs int,
) (*Worker, error) {
	if initialStatus != Offline && initialStatus != Available {
		return nil, errs.NewValueIsInvalidErrorWithCause("initialStatus",
			fmt.Errorf("%s is not a valid initial worker status", initialStatus))
	}

	w := &Worker{
		status: initialStatus,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setProfileID(profileID),
		w.setMaxConcurrentJobs(maxConcurrentJobs),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWorker reconstructs a worker aggregate from persistence, including
// its counter and last position. The capacity invariant is re-checked.
func RestoreWorker(
	id kernel.UUID,
	profileID kernel.UUID,
	status Status,
	location *kernel.GeoPoint,
	locationUpdatedAt *time.Time,
	activeJobs int,
	maxConcurrentJobs int,
) (*Worker, error) {
	w := &Worker{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setProfileID(profileID),
		w.setMaxConcurrentJobs(maxConcurrentJobs),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if activeJobs < 0 || activeJobs > maxConcurrentJobs {
		return nil, errs.NewValueIsOutOfRangeError("activeJobs", activeJobs, 0, maxConcurrentJobs)
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	w.status = status
	w.location = location
	w.locationUpdatedAt = locationUpdatedAt
	w.activeJobs = activeJobs

	return w, nil
}

// Validate checks that the Worker was created through a factory.
func (w *Worker) Validate() error {
	if w == nil {
		return ErrWorkerIsNotConstructed
	}
	return w.guard.Validate(ErrWorkerIsNotConstructed)
}

// IsEqual compares two workers by identifier.
func (w *Worker) IsEqual(other *Worker) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the worker's unique identifier.
func (w *Worker) ID() kernel.UUID {
	return w.id
}

// ProfileID returns the worker's profile reference.
func (w *Worker) ProfileID() kernel.UUID {
	return w.profileID
}

// Status returns the current availability state.
func (w *Worker) Status() Status {
	return w.status
}

// Location returns the last reported position, or nil before any report.
func (w *Worker) Location() *kernel.GeoPoint {
	return w.location
}

// LocationUpdatedAt returns the time of the last position report.
func (w *Worker) LocationUpdatedAt() *time.Time {
	return w.locationUpdatedAt
}

// ActiveJobs returns the concurrent-job counter.
func (w *Worker) ActiveJobs() int {
	return w.activeJobs
}

// MaxConcurrentJobs returns the configured concurrency limit.
func (w *Worker) MaxConcurrentJobs() int {
	return w.maxConcurrentJobs
}

// SetStatus moves the worker to the requested status. Worker status is
// caller-directed and unordered, so any valid status is accepted.
func (w *Worker) SetStatus(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	w.status = to
	return nil
}

// CanAcceptAssignment reports whether the worker is eligible to receive a
// new assignment. Returns a CapacityError when the worker is offline or the
// concurrent-job counter has reached the limit.
func (w *Worker) CanAcceptAssignment() error {
	if w.status == Offline {
		return errs.NewCapacityErrorWithCause(w.id.String(), w.activeJobs, w.maxConcurrentJobs, ErrWorkerIsOffline)
	}
	if w.activeJobs >= w.maxConcurrentJobs {
		return errs.NewCapacityError(w.id.String(), w.activeJobs, w.maxConcurrentJobs)
	}
	return nil
}

// AcceptAssignment increments the concurrent-job counter after an eligibility
// check. The counter can never pass the configured limit.
func (w *Worker) AcceptAssignment() error {
	if err := w.CanAcceptAssignment(); err != nil {
		return err
	}
	w.activeJobs++
	return nil
}

// ReleaseAssignment decrements the concurrent-job counter when an assignment
// reaches a terminal state. The counter never goes below zero.
func (w *Worker) ReleaseAssignment() {
	if w.activeJobs > 0 {
		w.activeJobs--
	}
}

// UpdatePosition records a validated position report with its timestamp.
// Position updates never change the worker's status.
func (w *Worker) UpdatePosition(point kernel.GeoPoint, at time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}

	w.location = &point
	w.locationUpdatedAt = &at
	return nil
}

func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) setProfileID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("profileId", err)
	}
	w.profileID = id
	return nil
}

func (w *Worker) setMaxConcurrentJobs(limit int) error {
	if limit <= 0 {
		return errs.NewValueIsOutOfRangeError("maxConcurrentJobs", limit, 1, "unbounded")
	}
	w.maxConcurrentJobs = limit
	return nil
}
