package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingObserver struct {
	subscribedBooking string
	callback          func(ports.Event)
	subscribed        chan struct{}
	unsubscribed      bool
	subscribeErr      error
}

func newStubBookingObserver() *stubBookingObserver {
	return &stubBookingObserver{subscribed: make(chan struct{})}
}

func (o *stubBookingObserver) Subscribe(
	_ context.Context,
	bookingID string,
	callback func(ports.Event),
) (ports.UnsubscribeFunc, error) {
	if o.subscribeErr != nil {
		return nil, o.subscribeErr
	}

	o.subscribedBooking = bookingID
	o.callback = callback
	close(o.subscribed)

	return func() { o.unsubscribed = true }, nil
}

// newWatchOnlyServer builds a server whose only exercised dependency is the
// booking observer.
func newWatchOnlyServer(observer ports.BookingObserver) *Server {
	return NewServer(
		commands.CreateBookingCommandHandler{},
		commands.CreateWorkerCommandHandler{},
		commands.AssignWorkerCommandHandler{},
		commands.ChangeBookingStatusCommandHandler{},
		commands.ChangeWorkerStatusCommandHandler{},
		commands.IngestLocationCommandHandler{},
		queries.GetActiveBookingsQueryHandler{},
		queries.GetAvailableWorkersQueryHandler{},
		observer,
	)
}

// signalingRecorder closes wrote on the first body write so tests can
// order their teardown after the handler has streamed something.
type signalingRecorder struct {
	*httptest.ResponseRecorder
	wrote chan struct{}
	once  sync.Once
}

func (r *signalingRecorder) Write(b []byte) (int, error) {
	r.once.Do(func() { close(r.wrote) })
	return r.ResponseRecorder.Write(b)
}

func newWatchContext(t *testing.T, bookingID kernel.UUID) (echo.Context, *signalingRecorder, context.CancelFunc) {
	t.Helper()

	requestCtx, cancel := context.WithCancel(t.Context())
	request := httptest.NewRequest(
		http.MethodGet, "/api/v1/bookings/"+bookingID.String()+"/events", nil,
	).WithContext(requestCtx)
	recorder := &signalingRecorder{ResponseRecorder: httptest.NewRecorder(), wrote: make(chan struct{})}

	return echo.New().NewContext(request, recorder), recorder, cancel
}

func TestServer_WatchBooking_StreamsEventsUntilClientLeaves(t *testing.T) {
	observer := newStubBookingObserver()
	server := newWatchOnlyServer(observer)

	bookingID := kernel.NewUUID()
	ctx, recorder, cancel := newWatchContext(t, bookingID)

	done := make(chan error, 1)
	go func() {
		done <- server.WatchBooking(ctx, bookingID.Bytes())
	}()

	select {
	case <-observer.subscribed:
	case <-time.After(5 * time.Second):
		t.Fatal("subscription was never established")
	}
	require.Equal(t, bookingID.String(), observer.subscribedBooking)

	observer.callback(ports.Event{
		Type:      ports.EventEtaUpdated,
		BookingID: bookingID.String(),
		Payload:   map[string]any{"etaMinutes": 12},
	})

	select {
	case <-recorder.wrote:
	case <-time.After(5 * time.Second):
		t.Fatal("event was never written to the stream")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("handler did not return after the client left")
	}

	assert.Equal(t, "text/event-stream", recorder.Header().Get(echo.HeaderContentType))
	assert.Contains(t, recorder.Body.String(), "event: eta-updated")
	assert.Contains(t, recorder.Body.String(), `"etaMinutes":12`)
	assert.True(t, observer.unsubscribed)
}

func TestServer_WatchBooking_SubscribeFailureReturnsError(t *testing.T) {
	observer := newStubBookingObserver()
	observer.subscribeErr = errors.New("broker unavailable")
	server := newWatchOnlyServer(observer)

	bookingID := kernel.NewUUID()
	ctx, recorder, cancel := newWatchContext(t, bookingID)
	defer cancel()

	err := server.WatchBooking(ctx, bookingID.Bytes())

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Failed to subscribe")
}
