package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// AssignWorkerCommandHandler is the assignment coordinator. It is the only
// place a booking moves from pending to assigned and the only writer of
// assignment records.
//
// The commit protocol is built on per-row conditional updates instead of a
// multi-row transaction: the booking row is claimed first with a
// compare-and-swap keyed on "still pending, still unassigned", then worker
// capacity is reserved, then the assignment record is written. Concurrent
// calls racing on the same booking resolve with exactly one winner; losers
// observe StateConflictError and no side effects. When a later step fails,
// the earlier writes are compensated; a failed compensation surfaces as
// AssignmentCorruptionError so an operator can reconcile by hand rather
// than retry blindly.
type AssignWorkerCommandHandler struct {
	uowFactory UoWFactory
	geo        services.GeoService
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewAssignWorkerCommandHandler creates the assignment coordinator.
func NewAssignWorkerCommandHandler(
	uowFactory UoWFactory,
	geo services.GeoService,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AssignWorkerCommandHandler {
	return AssignWorkerCommandHandler{
		uowFactory: uowFactory,
		geo:        geo,
		publisher:  publisher,
		logger:     logger.With("component", "assignment-coordinator"),
	}
}

// Handle assigns the worker to the booking and returns the created
// assignment record.
//
// Preconditions are checked in order with first failure winning: the
// booking must exist and be pending, its coordinate must lie inside the
// service area, the worker must exist, not be offline and have spare
// capacity. A retried call that finds the booking already assigned to the
// same worker returns the existing assignment rather than failing, which
// makes the operation safe to retry after a lost response.
func (h AssignWorkerCommandHandler) Handle(
	ctx context.Context,
	cmd AssignWorkerCommand,
) (assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return assignment.Assignment{}, err
	}

	uow := h.uowFactory.Create()
	bookingRepo := uow.BookingRepository()
	workerRepo := uow.WorkerRepository()
	assignmentRepo := uow.AssignmentRepository()

	target, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return assignment.Assignment{}, err
	}

	if target.Status() != booking.Pending {
		if h.isRetryOfCommittedAssign(target, cmd) {
			return h.recoverAssignment(ctx, assignmentRepo, target, cmd)
		}

		return assignment.Assignment{}, errs.NewStateConflictErrorWithCause(
			"booking", target.Status().String(), booking.Assigned.String(),
			errors.New("already assigned"),
		)
	}

	if err = h.geo.EnsureWithinServiceArea(target.Location()); err != nil {
		return assignment.Assignment{}, err
	}

	candidate, err := workerRepo.Get(ctx, cmd.WorkerID())
	if err != nil {
		return assignment.Assignment{}, err
	}

	if err = candidate.CanAcceptAssignment(); err != nil {
		return assignment.Assignment{}, err
	}

	now := time.Now().UTC()
	eta := h.estimateArrival(candidate.Location(), target.Location(), now)

	claimed, err := bookingRepo.AssignWorker(ctx, cmd.BookingID(), cmd.WorkerID())
	if err != nil {
		return assignment.Assignment{}, err
	}
	if !claimed {
		// Another caller committed first. Nothing was written.
		return assignment.Assignment{}, errs.NewStateConflictErrorWithCause(
			"booking", booking.Pending.String(), booking.Assigned.String(),
			errors.New("already assigned"),
		)
	}

	reserved, err := workerRepo.ReserveCapacity(ctx, cmd.WorkerID())
	if err == nil && !reserved {
		err = errs.NewCapacityError(
			cmd.WorkerID().String(), candidate.ActiveJobs(), candidate.MaxConcurrentJobs(),
		)
	}
	if err != nil {
		if revertErr := h.revertBookingClaim(ctx, bookingRepo, cmd); revertErr != nil {
			return assignment.Assignment{}, errs.NewAssignmentCorruptionError(
				cmd.BookingID().String(), cmd.WorkerID().String(), errors.Join(err, revertErr),
			)
		}

		return assignment.Assignment{}, err
	}

	var record assignment.Assignment
	created, err := assignment.NewAssignment(cmd.BookingID(), cmd.WorkerID(), now, eta)
	if err == nil {
		record = *created
		err = assignmentRepo.Add(ctx, record)
	}
	if err != nil {
		if revertErr := h.compensateCommit(ctx, bookingRepo, workerRepo, cmd); revertErr != nil {
			return assignment.Assignment{}, errs.NewAssignmentCorruptionError(
				cmd.BookingID().String(), cmd.WorkerID().String(), errors.Join(err, revertErr),
			)
		}

		return assignment.Assignment{}, err
	}

	h.publishAssignmentCreated(ctx, record)

	return record, nil
}

// isRetryOfCommittedAssign reports whether the non-pending booking is the
// outcome of an earlier call with the same arguments whose response was
// lost.
func (h AssignWorkerCommandHandler) isRetryOfCommittedAssign(
	target *booking.Booking,
	cmd AssignWorkerCommand,
) bool {
	return target.Status() == booking.Assigned &&
		target.Worker() != nil &&
		target.Worker().IsEqual(cmd.WorkerID())
}

// recoverAssignment finishes a retried assign whose booking update already
// committed. The existing record is returned when present; the unique key
// on the booking reference keeps a re-created record from duplicating one
// written concurrently.
func (h AssignWorkerCommandHandler) recoverAssignment(
	ctx context.Context,
	assignmentRepo ports.AssignmentRepository,
	target *booking.Booking,
	cmd AssignWorkerCommand,
) (assignment.Assignment, error) {
	record, err := assignmentRepo.GetByBooking(ctx, cmd.BookingID())
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return assignment.Assignment{}, err
	}

	created, err := assignment.NewAssignment(
		cmd.BookingID(), cmd.WorkerID(), time.Now().UTC(), nil,
	)
	if err != nil {
		return assignment.Assignment{}, err
	}
	record = *created

	if err = assignmentRepo.Add(ctx, record); err != nil {
		return assignment.Assignment{}, err
	}

	h.publishAssignmentCreated(ctx, record)

	return record, nil
}

// estimateArrival turns the straight-line travel estimate into an arrival
// timestamp. Workers without a known position get no ETA.
func (h AssignWorkerCommandHandler) estimateArrival(
	from *kernel.GeoPoint,
	to kernel.GeoPoint,
	now time.Time,
) *time.Time {
	if from == nil {
		return nil
	}

	minutes, err := h.geo.EstimateETA(*from, to)
	if err != nil {
		return nil
	}

	arrival := now.Add(time.Duration(minutes) * time.Minute)
	return &arrival
}

// revertBookingClaim undoes the conditional booking update.
func (h AssignWorkerCommandHandler) revertBookingClaim(
	ctx context.Context,
	bookingRepo ports.BookingRepository,
	cmd AssignWorkerCommand,
) error {
	reverted, err := bookingRepo.RevertAssignment(ctx, cmd.BookingID(), cmd.WorkerID())
	if err != nil {
		return err
	}
	if !reverted {
		return fmt.Errorf("booking %s no longer carries worker %s", cmd.BookingID(), cmd.WorkerID())
	}

	return nil
}

// compensateCommit undoes both the capacity reservation and the booking
// claim.
func (h AssignWorkerCommandHandler) compensateCommit(
	ctx context.Context,
	bookingRepo ports.BookingRepository,
	workerRepo ports.WorkerRepository,
	cmd AssignWorkerCommand,
) error {
	if err := workerRepo.ReleaseCapacity(ctx, cmd.WorkerID()); err != nil {
		return err
	}

	return h.revertBookingClaim(ctx, bookingRepo, cmd)
}

// publishAssignmentCreated notifies the external collaborator. Failures are
// logged and never fail the assignment.
func (h AssignWorkerCommandHandler) publishAssignmentCreated(ctx context.Context, record assignment.Assignment) {
	event := ports.Event{
		Type:      ports.EventAssignmentCreated,
		BookingID: record.BookingID().String(),
		Payload: map[string]any{
			"workerId":   record.WorkerID().String(),
			"assignedAt": record.AssignedAt().Format(time.RFC3339),
		},
	}
	if eta := record.ETA(); eta != nil {
		event.Payload["eta"] = eta.Format(time.RFC3339)
	}

	if err := h.publisher.Publish(ctx, event); err != nil {
		h.logger.Warn("failed to publish assignment-created event",
			"bookingId", event.BookingID, "error", err)
	}
}
