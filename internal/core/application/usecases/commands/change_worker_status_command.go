package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/guard"
)

var ErrChangeWorkerStatusCommandIsNotConstructed = errors.New(
	"ChangeWorkerStatusCommand must be created via NewChangeWorkerStatusCommand constructor",
)

// ChangeWorkerStatusCommand sets a worker's status. Transitions are
// caller-directed; the worker's device and the dispatcher both use this.
type ChangeWorkerStatusCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	target   worker.Status

	guard guard.ConstructorGuard
}

// NewChangeWorkerStatusCommand creates a command to move workerID to
// target status.
func NewChangeWorkerStatusCommand(workerID kernel.UUID, target worker.Status) (ChangeWorkerStatusCommand, error) {
	if err := errors.Join(workerID.Validate(), target.Validate()); err != nil {
		return ChangeWorkerStatusCommand{}, err
	}

	return ChangeWorkerStatusCommand{
		workerID: workerID,
		target:   target,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeWorkerStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeWorkerStatusCommandIsNotConstructed)
}

// WorkerID returns the worker to move.
func (c ChangeWorkerStatusCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Target returns the requested status.
func (c ChangeWorkerStatusCommand) Target() worker.Status {
	return c.target
}
