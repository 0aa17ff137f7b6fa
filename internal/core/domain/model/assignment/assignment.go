// Package assignment contains the Assignment record linking one worker to
// one booking for its active duration. At most one active assignment exists
// per booking; the record is created only by the dispatch coordinator and
// never mutated by the location tracker.
package assignment

import (
	"errors"
	"fmt"
	"time"

	bookingmodel "dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when using an improperly
// initialized Assignment.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment mirrors the active phase of its booking. Its status follows the
// booking's assigned/en_route/in_progress/completed/cancelled progression.
type Assignment struct {
	bookingID  kernel.UUID
	workerID   kernel.UUID
	status     bookingmodel.Status
	assignedAt time.Time
	// eta is the estimated arrival computed at assignment time (nil when
	// the worker had no known position yet)
	eta *time.Time

	guard guard.ConstructorGuard
}

// NewAssignment creates an assignment in the assigned phase.
// The coordinator is the only caller; assignment creation is keyed on the
// booking id at the store, making retries idempotent.
func NewAssignment(
	bookingID kernel.UUID,
	workerID kernel.UUID,
	assignedAt time.Time,
	eta *time.Time,
) (*Assignment, error) {
	a := &Assignment{
		status: bookingmodel.Assigned,
		eta:    eta,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setBookingID(bookingID),
		a.setWorkerID(workerID),
		a.setAssignedAt(assignedAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	bookingID kernel.UUID,
	workerID kernel.UUID,
	status bookingmodel.Status,
	assignedAt time.Time,
	eta *time.Time,
) (*Assignment, error) {
	a := &Assignment{
		eta:   eta,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setBookingID(bookingID),
		a.setWorkerID(workerID),
		a.setAssignedAt(assignedAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if status == bookingmodel.Pending {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("an assignment cannot be in the %s phase", status))
	}

	a.status = status
	return a, nil
}

// Validate checks that the Assignment was created through a factory.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// BookingID returns the booking reference.
func (a *Assignment) BookingID() kernel.UUID {
	return a.bookingID
}

// WorkerID returns the worker reference.
func (a *Assignment) WorkerID() kernel.UUID {
	return a.workerID
}

// Status returns the mirrored booking phase.
func (a *Assignment) Status() bookingmodel.Status {
	return a.status
}

// AssignedAt returns the time the assignment was committed.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// ETA returns the estimated arrival recorded at assignment, or nil.
func (a *Assignment) ETA() *time.Time {
	return a.eta
}

// IsActive reports whether the assignment is in a non-terminal phase.
func (a *Assignment) IsActive() bool {
	return !a.status.IsTerminal()
}

// Mirror follows the booking's status change. The assignment accepts the
// same transitions as the booking's own state machine; anything else is a
// StateConflictError.
func (a *Assignment) Mirror(to bookingmodel.Status) error {
	newStatus, err := a.status.TransitionTo(to)
	if err != nil {
		return errs.NewStateConflictErrorWithCause("assignment", a.status.String(), to.String(), err)
	}
	a.status = newStatus
	return nil
}

func (a *Assignment) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("bookingId", err)
	}
	a.bookingID = id
	return nil
}

func (a *Assignment) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("workerId", err)
	}
	a.workerID = id
	return nil
}

func (a *Assignment) setAssignedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("assignedAt")
	}
	a.assignedAt = at
	return nil
}
