package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ChangeBookingStatusCommandHandler drives booking lifecycle transitions
// requested by dispatchers and workers: assigned to en_route, en_route to
// in_progress, in_progress to completed, and cancellation. The assignment
// record mirrors the booking's phase, and a terminal transition releases
// the worker's reserved capacity.
type ChangeBookingStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeBookingStatusCommandHandler creates a handler for booking
// lifecycle transitions.
func NewChangeBookingStatusCommandHandler(uowFactory UoWFactory) ChangeBookingStatusCommandHandler {
	return ChangeBookingStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition. An invalid transition returns
// StateConflictError and leaves the booking unchanged.
func (h ChangeBookingStatusCommandHandler) Handle(ctx context.Context, cmd ChangeBookingStatusCommand) error {
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

	bookingRepo := uow.BookingRepository()

	target, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	// Cancellation clears the worker reference on the aggregate, so the
	// previous holder must be captured first.
	var previousWorker *kernel.UUID
	if w := target.Worker(); w != nil {
		captured := *w
		previousWorker = &captured
	}

	if err = target.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if err = bookingRepo.Update(ctx, target); err != nil {
		return err
	}

	if previousWorker != nil {
		if err = h.mirrorAssignment(ctx, uow, cmd); err != nil {
			return err
		}

		if cmd.Target().IsTerminal() {
			if err = uow.WorkerRepository().ReleaseCapacity(ctx, *previousWorker); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}

// mirrorAssignment keeps the assignment record's phase in step with the
// booking. Bookings cancelled before assignment have no record to mirror.
func (h ChangeBookingStatusCommandHandler) mirrorAssignment(
	ctx context.Context,
	uow UoW,
	cmd ChangeBookingStatusCommand,
) error {
	assignmentRepo := uow.AssignmentRepository()

	record, err := assignmentRepo.GetByBooking(ctx, cmd.BookingID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = record.Mirror(cmd.Target()); err != nil {
		return err
	}

	return assignmentRepo.Update(ctx, record)
}
