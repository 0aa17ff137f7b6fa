package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/domain/services"
)

func pendingBooking(t *testing.T, lat, lng float64) *booking.Booking {
	t.Helper()

	location, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)

	b, err := booking.NewBooking(
		kernel.NewUUID(),
		kernel.NewUUID(),
		booking.ServiceRegular,
		time.Now().Add(24*time.Hour),
		location,
		120,
		nil,
		false,
		"",
	)
	require.NoError(t, err)
	return b
}

func workerAt(t *testing.T, lat, lng float64) *worker.Worker {
	t.Helper()

	w, err := worker.NewWorker(kernel.NewUUID(), kernel.NewUUID(), worker.Available, 1)
	require.NoError(t, err)

	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	require.NoError(t, w.UpdatePosition(point, time.Now()))
	return w
}

func Test_WorkerDispatcher_SelectsClosestWorker(t *testing.T) {
	dispatcher := services.NewWorkerDispatcher(testGeoService(t, 500, 20))
	b := pendingBooking(t, 40.7128, -74.0060)

	near := workerAt(t, 40.73, -74.00)
	far := workerAt(t, 40.90, -73.80)

	selected, err := dispatcher.SelectWorker(b, []*worker.Worker{far, near})

	require.NoError(t, err)
	assert.True(t, selected.IsEqual(near))
}

func Test_WorkerDispatcher_SkipsIneligibleWorkers(t *testing.T) {
	dispatcher := services.NewWorkerDispatcher(testGeoService(t, 500, 20))
	b := pendingBooking(t, 40.7128, -74.0060)

	t.Run("offline worker is skipped", func(t *testing.T) {
		offline := workerAt(t, 40.7128, -74.0060)
		require.NoError(t, offline.SetStatus(worker.Offline))
		fallback := workerAt(t, 40.90, -73.80)

		selected, err := dispatcher.SelectWorker(b, []*worker.Worker{offline, fallback})

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(fallback))
	})

	t.Run("worker at capacity is skipped", func(t *testing.T) {
		busy := workerAt(t, 40.7128, -74.0060)
		require.NoError(t, busy.AcceptAssignment())
		fallback := workerAt(t, 40.90, -73.80)

		selected, err := dispatcher.SelectWorker(b, []*worker.Worker{busy, fallback})

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(fallback))
	})

	t.Run("worker without a known position is skipped", func(t *testing.T) {
		unlocated, err := worker.NewWorker(kernel.NewUUID(), kernel.NewUUID(), worker.Available, 1)
		require.NoError(t, err)
		fallback := workerAt(t, 40.90, -73.80)

		selected, err := dispatcher.SelectWorker(b, []*worker.Worker{unlocated, fallback})

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(fallback))
	})

	t.Run("worker on break remains eligible", func(t *testing.T) {
		resting := workerAt(t, 40.7128, -74.0060)
		require.NoError(t, resting.SetStatus(worker.Break))

		selected, err := dispatcher.SelectWorker(b, []*worker.Worker{resting})

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(resting))
	})
}

func Test_WorkerDispatcher_NoEligibleWorker(t *testing.T) {
	dispatcher := services.NewWorkerDispatcher(testGeoService(t, 500, 20))
	b := pendingBooking(t, 40.7128, -74.0060)

	t.Run("empty candidate list", func(t *testing.T) {
		_, err := dispatcher.SelectWorker(b, nil)

		assert.ErrorIs(t, err, services.ErrWorkerNotFound)
	})

	t.Run("every candidate ineligible", func(t *testing.T) {
		offline := workerAt(t, 40.7128, -74.0060)
		require.NoError(t, offline.SetStatus(worker.Offline))

		_, err := dispatcher.SelectWorker(b, []*worker.Worker{offline})

		assert.ErrorIs(t, err, services.ErrWorkerNotFound)
	})
}

func Test_WorkerDispatcher_RejectsNonPendingBooking(t *testing.T) {
	dispatcher := services.NewWorkerDispatcher(testGeoService(t, 500, 20))

	b := pendingBooking(t, 40.7128, -74.0060)
	require.NoError(t, b.Assign(kernel.NewUUID()))

	_, err := dispatcher.SelectWorker(b, []*worker.Worker{workerAt(t, 40.73, -74.00)})

	assert.ErrorIs(t, err, services.ErrWorkerNotFound)
}
