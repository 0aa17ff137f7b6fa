package commands

import (
	"context"

	"dispatch/internal/core/domain/model/worker"
)

// CreateWorkerCommandHandler handles worker onboarding. Deep validation of
// the initial status and concurrency limit lives in the worker aggregate.
type CreateWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewCreateWorkerCommandHandler creates a handler for worker onboarding.
func NewCreateWorkerCommandHandler(uowFactory WorkerUoWFactory) CreateWorkerCommandHandler {
	return CreateWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the worker onboarding command.
func (h CreateWorkerCommandHandler) Handle(ctx context.Context, cmd CreateWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := worker.NewWorker(
		cmd.WorkerID(),
		cmd.ProfileID(),
		cmd.InitialStatus(),
		cmd.MaxConcurrentJobs(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
