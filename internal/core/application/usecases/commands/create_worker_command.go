package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/guard"
)

var ErrCreateWorkerCommandIsNotConstructed = errors.New(
	"CreateWorkerCommand must be created via NewCreateWorkerCommand constructor",
)

// CreateWorkerCommand represents worker onboarding. New workers start in
// offline or available status with a configured concurrency limit.
type CreateWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID          kernel.UUID
	profileID         kernel.UUID
	initialStatus     worker.Status
	maxConcurrentJobs int

	guard guard.ConstructorGuard
}

// NewCreateWorkerCommand creates a command to onboard a worker.
func NewCreateWorkerCommand(
	workerID kernel.UUID,
	profileID kernel.UUID,
	initialStatus worker.Status,
	maxConcurrentJobs int,
) (CreateWorkerCommand, error) {
	if err := errors.Join(workerID.Validate(), profileID.Validate()); err != nil {
		return CreateWorkerCommand{}, err
	}

	return CreateWorkerCommand{
		workerID:          workerID,
		profileID:         profileID,
		initialStatus:     initialStatus,
		maxConcurrentJobs: maxConcurrentJobs,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkerCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkerCommandIsNotConstructed)
}

// WorkerID returns the identifier for the new worker.
func (c CreateWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// ProfileID returns the worker's profile reference.
func (c CreateWorkerCommand) ProfileID() kernel.UUID {
	return c.profileID
}

// InitialStatus returns the status the worker starts in.
func (c CreateWorkerCommand) InitialStatus() worker.Status {
	return c.initialStatus
}

// MaxConcurrentJobs returns the worker's concurrency limit.
func (c CreateWorkerCommand) MaxConcurrentJobs() int {
	return c.maxConcurrentJobs
}
