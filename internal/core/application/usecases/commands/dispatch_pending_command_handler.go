package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

var (
	ErrNoPendingBooking   = errors.New("no pending booking found")
	ErrNoAvailableWorkers = errors.New("no available workers found")
)

// DispatchPendingCommandHandler runs one automatic dispatch round. The
// selection is read-only; the actual commit goes through the assignment
// coordinator, so a concurrent manual assignment simply wins the race and
// this round reports StateConflictError.
type DispatchPendingCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.WorkerDispatcher
	assigner   AssignWorkerCommandHandler
}

// NewDispatchPendingCommandHandler creates a handler for automatic
// dispatch rounds.
func NewDispatchPendingCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.WorkerDispatcher,
	assigner AssignWorkerCommandHandler,
) DispatchPendingCommandHandler {
	return DispatchPendingCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		assigner:   assigner,
	}
}

// Handle picks the oldest pending booking, selects the closest eligible
// worker and hands the pair to the assignment coordinator. Returns
// ErrNoPendingBooking or ErrNoAvailableWorkers when there is nothing to
// dispatch.
func (h DispatchPendingCommandHandler) Handle(ctx context.Context, cmd DispatchPendingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	pending, err := uow.BookingRepository().GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingBooking
	}
	if err != nil {
		return err
	}

	candidates, err := uow.WorkerRepository().GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return ErrNoAvailableWorkers
	}

	selected, err := h.dispatcher.SelectWorker(pending, candidates)
	if errors.Is(err, services.ErrWorkerNotFound) {
		return ErrNoAvailableWorkers
	}
	if err != nil {
		return err
	}

	assignCmd, err := NewAssignWorkerCommand(pending.ID(), selected.ID())
	if err != nil {
		return err
	}

	_, err = h.assigner.Handle(ctx, assignCmd)
	return err
}
