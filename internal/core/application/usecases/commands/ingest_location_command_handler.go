package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/location"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// IngestLocationCommandHandler is the location tracker. Each report updates
// the worker's current position, appends an immutable sample to the history
// log and refreshes the live-position cache. For every en_route booking of
// the worker a fresh ETA is estimated and announced; booking and worker
// status are never touched here.
type IngestLocationCommandHandler struct {
	uowFactory TrackingUoWFactory
	geo        services.GeoService
	cache      ports.LocationCache
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewIngestLocationCommandHandler creates the location tracker handler.
func NewIngestLocationCommandHandler(
	uowFactory TrackingUoWFactory,
	geo services.GeoService,
	cache ports.LocationCache,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) IngestLocationCommandHandler {
	return IngestLocationCommandHandler{
		uowFactory: uowFactory,
		geo:        geo,
		cache:      cache,
		publisher:  publisher,
		logger:     logger.With("component", "location-tracker"),
	}
}

// Handle processes one position report. The cache write and the ETA events
// are best-effort and happen only after the report is durably committed.
func (h IngestLocationCommandHandler) Handle(ctx context.Context, cmd IngestLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sample, err := location.NewSample(
		cmd.WorkerID(), cmd.Point(), cmd.Heading(), cmd.Speed(), cmd.RecordedAt(),
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

	workerRepo := uow.WorkerRepository()

	reporter, err := workerRepo.Get(ctx, cmd.WorkerID())
	if err != nil {
		return err
	}

	if err = reporter.UpdatePosition(cmd.Point(), cmd.RecordedAt()); err != nil {
		return err
	}

	if err = workerRepo.Update(ctx, reporter); err != nil {
		return err
	}

	if err = uow.LocationRepository().Append(ctx, sample); err != nil {
		return err
	}

	enRoute, err := uow.BookingRepository().GetAllEnRouteByWorker(ctx, cmd.WorkerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.refreshCache(ctx, cmd)
	h.announceEtas(ctx, cmd, enRoute)

	return nil
}

func (h IngestLocationCommandHandler) refreshCache(ctx context.Context, cmd IngestLocationCommand) {
	err := h.cache.Set(ctx, ports.LiveLocation{
		WorkerID:   cmd.WorkerID(),
		Point:      cmd.Point(),
		RecordedAt: cmd.RecordedAt(),
	})
	if err != nil {
		h.logger.Warn("failed to refresh live location cache",
			"workerId", cmd.WorkerID().String(), "error", err)
	}
}

// announceEtas emits one eta-updated event per en_route booking of the
// reporting worker.
func (h IngestLocationCommandHandler) announceEtas(
	ctx context.Context,
	cmd IngestLocationCommand,
	enRoute []*booking.Booking,
) {
	for _, b := range enRoute {
		minutes, err := h.geo.EstimateETA(cmd.Point(), b.Location())
		if err != nil {
			h.logger.Warn("failed to estimate arrival",
				"bookingId", b.ID().String(), "error", err)
			continue
		}

		event := ports.Event{
			Type:      ports.EventEtaUpdated,
			BookingID: b.ID().String(),
			Payload: map[string]any{
				"workerId":   cmd.WorkerID().String(),
				"etaMinutes": minutes,
			},
		}

		if err = h.publisher.Publish(ctx, event); err != nil {
			h.logger.Warn("failed to publish eta-updated event",
				"bookingId", event.BookingID, "error", err)
		}
	}
}
