package commands

import (
	"context"
)

// ChangeWorkerStatusCommandHandler handles worker status changes.
type ChangeWorkerStatusCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewChangeWorkerStatusCommandHandler creates a handler for worker status
// changes.
func NewChangeWorkerStatusCommandHandler(uowFactory WorkerUoWFactory) ChangeWorkerStatusCommandHandler {
	return ChangeWorkerStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change.
func (h ChangeWorkerStatusCommandHandler) Handle(ctx context.Context, cmd ChangeWorkerStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	workerRepo := uow.WorkerRepository()

	target, err := workerRepo.Get(ctx, cmd.WorkerID())
	if err != nil {
		return err
	}

	if err = target.SetStatus(cmd.Target()); err != nil {
		return err
	}

	if err = workerRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
