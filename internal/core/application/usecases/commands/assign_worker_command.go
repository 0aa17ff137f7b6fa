package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignWorkerCommandIsNotConstructed = errors.New(
	"AssignWorkerCommand must be created via NewAssignWorkerCommand constructor",
)

// AssignWorkerCommand requests the assignment of one worker to one pending
// booking.
type AssignWorkerCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	workerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWorkerCommand creates a command to assign workerID to bookingID.
func NewAssignWorkerCommand(bookingID kernel.UUID, workerID kernel.UUID) (AssignWorkerCommand, error) {
	if err := errors.Join(bookingID.Validate(), workerID.Validate()); err != nil {
		return AssignWorkerCommand{}, err
	}

	return AssignWorkerCommand{
		bookingID: bookingID,
		workerID:  workerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerCommandIsNotConstructed)
}

// BookingID returns the booking to assign.
func (c AssignWorkerCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// WorkerID returns the worker to assign.
func (c AssignWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}
