package commands

import (
	"context"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/services"
)

// CreateBookingCommandHandler handles booking intake: it verifies the
// address lies inside the service area, prices the request and persists the
// booking in pending status.
type CreateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	geo        services.GeoService
	pricing    services.PricingEngine
}

// NewCreateBookingCommandHandler creates a handler for booking intake.
func NewCreateBookingCommandHandler(
	uowFactory BookingUoWFactory,
	geo services.GeoService,
	pricing services.PricingEngine,
) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		geo:        geo,
		pricing:    pricing,
	}
}

// Handle processes the booking intake command. The price is computed once
// here and never recomputed; OutOfServiceAreaError rejects addresses
// outside the service disc before anything is written.
func (h CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.geo.EnsureWithinServiceArea(cmd.Location()); err != nil {
		return err
	}

	distance, err := h.geo.DistanceFromCenter(cmd.Location())
	if err != nil {
		return err
	}

	priced, err := h.pricing.ComputePrice(services.PriceRequest{
		ServiceType:             cmd.ServiceType(),
		ScheduledAt:             cmd.ScheduledAt(),
		DistanceMiles:           distance,
		AddOnIDs:                cmd.AddOnIDs(),
		Recurring:               cmd.IsRecurring(),
		SubscriptionDiscountPct: cmd.SubscriptionDiscountPct(),
	})
	if err != nil {
		return err
	}

	aggregate, err := booking.NewBooking(
		cmd.BookingID(),
		cmd.CustomerID(),
		cmd.ServiceType(),
		cmd.ScheduledAt(),
		cmd.Location(),
		priced.TotalPrice,
		cmd.AddOnIDs(),
		cmd.IsRecurring(),
		cmd.Notes(),
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

	if err = uow.BookingRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
