package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

func newDispatchHandler(
	t *testing.T,
	selectionFactory *MockUoWFactory,
	assignFactory *MockUoWFactory,
	publisher *MockEventPublisher,
) commands.DispatchPendingCommandHandler {
	t.Helper()

	geo := testGeo(t)
	assigner := commands.NewAssignWorkerCommandHandler(assignFactory, geo, publisher, discardLogger())
	return commands.NewDispatchPendingCommandHandler(
		selectionFactory, services.NewWorkerDispatcher(geo), assigner,
	)
}

func TestDispatchPendingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	pending := testPendingBooking(t)
	candidate := testAvailableWorker(t)

	selectionBookingRepo := new(MockBookingRepository)
	selectionWorkerRepo := new(MockWorkerRepository)
	selectionUoW := new(MockUoW)
	selectionUoW.On("BookingRepository").Return(selectionBookingRepo).Once()
	selectionUoW.On("WorkerRepository").Return(selectionWorkerRepo).Once()
	selectionBookingRepo.On("GetFirstPending", ctx).Return(pending, nil).Once()
	selectionWorkerRepo.On("GetAllAvailable", ctx).Return([]*worker.Worker{candidate}, nil).Once()

	selectionFactory := new(MockUoWFactory)
	selectionFactory.On("Create").Return(selectionUoW).Once()

	assignBookingRepo, assignWorkerRepo, assignmentRepo, _, assignFactory := assignFixtures(t)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		assignBookingRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		assignWorkerRepo.On("Get", ctx, candidate.ID()).Return(candidate, nil).Once(),
		assignBookingRepo.On("AssignWorker", ctx, pending.ID(), candidate.ID()).Return(true, nil).Once(),
		assignWorkerRepo.On("ReserveCapacity", ctx, candidate.ID()).Return(true, nil).Once(),
		assignmentRepo.On("Add", ctx, mock.AnythingOfType("assignment.Assignment")).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.AnythingOfType("ports.Event")).Return(nil).Once(),
	)

	handler := newDispatchHandler(t, selectionFactory, assignFactory, publisher)
	err := handler.Handle(ctx, commands.NewDispatchPendingCommand())

	require.NoError(t, err)
	assignmentRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDispatchPendingCommandHandler_Handle_NoPendingBooking(t *testing.T) {
	ctx := t.Context()

	selectionBookingRepo := new(MockBookingRepository)
	selectionUoW := new(MockUoW)
	selectionUoW.On("BookingRepository").Return(selectionBookingRepo).Once()
	selectionBookingRepo.On("GetFirstPending", ctx).
		Return(nil, errs.NewObjectNotFoundError("status", booking.Pending.String())).Once()

	selectionFactory := new(MockUoWFactory)
	selectionFactory.On("Create").Return(selectionUoW).Once()

	handler := newDispatchHandler(t, selectionFactory, new(MockUoWFactory), new(MockEventPublisher))
	err := handler.Handle(ctx, commands.NewDispatchPendingCommand())

	require.ErrorIs(t, err, commands.ErrNoPendingBooking)
}

func TestDispatchPendingCommandHandler_Handle_NoAvailableWorkers(t *testing.T) {
	ctx := t.Context()

	pending := testPendingBooking(t)

	selectionBookingRepo := new(MockBookingRepository)
	selectionWorkerRepo := new(MockWorkerRepository)
	selectionUoW := new(MockUoW)
	selectionUoW.On("BookingRepository").Return(selectionBookingRepo).Once()
	selectionUoW.On("WorkerRepository").Return(selectionWorkerRepo).Once()
	selectionBookingRepo.On("GetFirstPending", ctx).Return(pending, nil).Once()
	selectionWorkerRepo.On("GetAllAvailable", ctx).Return([]*worker.Worker{}, nil).Once()

	selectionFactory := new(MockUoWFactory)
	selectionFactory.On("Create").Return(selectionUoW).Once()

	handler := newDispatchHandler(t, selectionFactory, new(MockUoWFactory), new(MockEventPublisher))
	err := handler.Handle(ctx, commands.NewDispatchPendingCommand())

	require.ErrorIs(t, err, commands.ErrNoAvailableWorkers)
}

func TestDispatchPendingCommandHandler_Handle_AllCandidatesIneligible(t *testing.T) {
	ctx := t.Context()

	pending := testPendingBooking(t)
	offline := testAvailableWorker(t)
	require.NoError(t, offline.SetStatus(worker.Offline))

	selectionBookingRepo := new(MockBookingRepository)
	selectionWorkerRepo := new(MockWorkerRepository)
	selectionUoW := new(MockUoW)
	selectionUoW.On("BookingRepository").Return(selectionBookingRepo).Once()
	selectionUoW.On("WorkerRepository").Return(selectionWorkerRepo).Once()
	selectionBookingRepo.On("GetFirstPending", ctx).Return(pending, nil).Once()
	selectionWorkerRepo.On("GetAllAvailable", ctx).Return([]*worker.Worker{offline}, nil).Once()

	selectionFactory := new(MockUoWFactory)
	selectionFactory.On("Create").Return(selectionUoW).Once()

	handler := newDispatchHandler(t, selectionFactory, new(MockUoWFactory), new(MockEventPublisher))
	err := handler.Handle(ctx, commands.NewDispatchPendingCommand())

	assert.ErrorIs(t, err, commands.ErrNoAvailableWorkers)
}
