package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// RefreshEtasCommandHandler periodically re-announces ETAs for en_route
// bookings, covering workers whose devices go quiet between position
// reports. Worker positions come from the live cache with the persisted
// position as fallback; travel times come from the routing provider when
// one is configured, otherwise from the straight-line estimate.
type RefreshEtasCommandHandler struct {
	uowFactory UoWFactory
	geo        services.GeoService
	routing    ports.RoutingProvider
	cache      ports.LocationCache
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewRefreshEtasCommandHandler creates a handler for ETA sweeps. routing
// may be nil.
func NewRefreshEtasCommandHandler(
	uowFactory UoWFactory,
	geo services.GeoService,
	routing ports.RoutingProvider,
	cache ports.LocationCache,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) RefreshEtasCommandHandler {
	return RefreshEtasCommandHandler{
		uowFactory: uowFactory,
		geo:        geo,
		routing:    routing,
		cache:      cache,
		publisher:  publisher,
		logger:     logger.With("component", "eta-refresh"),
	}
}

// Handle runs one sweep. Individual booking failures are logged and
// skipped so one bad record cannot stall the rest of the sweep.
func (h RefreshEtasCommandHandler) Handle(ctx context.Context, cmd RefreshEtasCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	active, err := uow.BookingRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	for _, b := range active {
		if b.Status() != booking.EnRoute || b.Worker() == nil {
			continue
		}

		if err = h.announce(ctx, uow, b); err != nil {
			h.logger.Warn("failed to refresh booking eta",
				"bookingId", b.ID().String(), "error", err)
		}
	}

	return nil
}

func (h RefreshEtasCommandHandler) announce(ctx context.Context, uow UoW, b *booking.Booking) error {
	workerID := *b.Worker()

	position, err := h.workerPosition(ctx, uow, workerID)
	if err != nil {
		return err
	}

	minutes, err := h.travelTime(ctx, *position, b.Location())
	if err != nil {
		return err
	}

	return h.publisher.Publish(ctx, ports.Event{
		Type:      ports.EventEtaUpdated,
		BookingID: b.ID().String(),
		Payload: map[string]any{
			"workerId":   workerID.String(),
			"etaMinutes": minutes,
		},
	})
}

// workerPosition prefers the live cache and falls back to the persisted
// worker record.
func (h RefreshEtasCommandHandler) workerPosition(
	ctx context.Context,
	uow UoW,
	workerID kernel.UUID,
) (*kernel.GeoPoint, error) {
	live, err := h.cache.Get(ctx, workerID)
	if err == nil {
		return &live.Point, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.Warn("live location cache read failed",
			"workerId", workerID.String(), "error", err)
	}

	persisted, err := uow.WorkerRepository().Get(ctx, workerID)
	if err != nil {
		return nil, err
	}

	position := persisted.Location()
	if position == nil {
		return nil, errs.NewObjectNotFoundError("workerLocation", workerID.String())
	}

	return position, nil
}

// travelTime asks the routing provider first and falls back to the
// straight-line estimate on any failure.
func (h RefreshEtasCommandHandler) travelTime(
	ctx context.Context,
	from kernel.GeoPoint,
	to kernel.GeoPoint,
) (int, error) {
	if h.routing != nil {
		minutes, err := h.routing.TravelTimeMinutes(ctx, from, to)
		if err == nil {
			return minutes, nil
		}

		h.logger.Warn("routing provider failed, falling back to straight-line estimate",
			"error", err)
	}

	return h.geo.EstimateETA(from, to)
}
