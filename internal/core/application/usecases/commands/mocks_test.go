package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/location"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetFirstPending(ctx context.Context) (*booking.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAllActive(ctx context.Context) ([]*booking.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAllEnRouteByWorker(
	ctx context.Context,
	workerID kernel.UUID,
) ([]*booking.Booking, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) AssignWorker(
	ctx context.Context,
	bookingID kernel.UUID,
	workerID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, bookingID, workerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) RevertAssignment(
	ctx context.Context,
	bookingID kernel.UUID,
	workerID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, bookingID, workerID)
	return args.Bool(0), args.Error(1)
}

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Add(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Update(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetAllAvailable(ctx context.Context) ([]*worker.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) ReserveCapacity(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkerRepository) ReleaseCapacity(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, record assignment.Assignment) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, record assignment.Assignment) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetByBooking(
	ctx context.Context,
	bookingID kernel.UUID,
) (assignment.Assignment, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllActiveByWorker(
	ctx context.Context,
	workerID kernel.UUID,
) ([]assignment.Assignment, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, bookingID kernel.UUID) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Append(ctx context.Context, sample location.Sample) error {
	args := m.Called(ctx, sample)
	return args.Error(0)
}

// MockUoW implements every unit of work variant used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

func (m *MockUoW) WorkerRepository() ports.WorkerRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkerRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockWorkerUoWFactory struct{ mock.Mock }

func (m *MockWorkerUoWFactory) Create() commands.WorkerUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkerUoW)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockLocationCache struct{ mock.Mock }

func (m *MockLocationCache) Set(ctx context.Context, live ports.LiveLocation) error {
	args := m.Called(ctx, live)
	return args.Error(0)
}

func (m *MockLocationCache) Get(ctx context.Context, workerID kernel.UUID) (ports.LiveLocation, error) {
	args := m.Called(ctx, workerID)
	return args.Get(0).(ports.LiveLocation), args.Error(1)
}

type MockRoutingProvider struct{ mock.Mock }

func (m *MockRoutingProvider) TravelTimeMinutes(
	ctx context.Context,
	from kernel.GeoPoint,
	to kernel.GeoPoint,
) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

// Shared fixtures.

func testGeo(t *testing.T) services.GeoService {
	t.Helper()

	center, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)

	geo, err := services.NewGeoService(center, 25, 20)
	require.NoError(t, err)
	return geo
}

func testPendingBooking(t *testing.T) *booking.Booking {
	t.Helper()

	point, err := kernel.NewGeoPoint(40.6782, -73.9442)
	require.NoError(t, err)

	b, err := booking.NewBooking(
		kernel.NewUUID(),
		kernel.NewUUID(),
		booking.ServiceRegular,
		time.Now().Add(24*time.Hour),
		point,
		120,
		nil,
		false,
		"",
	)
	require.NoError(t, err)
	return b
}

func testAvailableWorker(t *testing.T) *worker.Worker {
	t.Helper()

	w, err := worker.NewWorker(kernel.NewUUID(), kernel.NewUUID(), worker.Available, 1)
	require.NoError(t, err)

	point, err := kernel.NewGeoPoint(40.7, -74.0)
	require.NoError(t, err)
	require.NoError(t, w.UpdatePosition(point, time.Now()))
	return w
}
