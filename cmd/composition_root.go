package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/adapters/out/postgres"
	redisadapter "dispatch/internal/adapters/out/redis"
	"dispatch/internal/adapters/out/routing"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	geoService services.GeoService
	pricing    services.PricingEngine
	dispatcher services.WorkerDispatcher

	publisher ports.EventPublisher
	cache     ports.LocationCache
	observer  ports.BookingObserver
	routing   ports.RoutingProvider

	logger *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) (CompositionRoot, error) {
	serviceCenter, err := kernel.NewGeoPoint(config.ServiceCenterLat, config.ServiceCenterLng)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("service center: %w", err)
	}

	geoService, err := services.NewGeoService(serviceCenter, config.ServiceRadiusMiles, config.AverageSpeedMph)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("geo service: %w", err)
	}

	pricing, err := services.NewPricingEngine(defaultPricingConfig())
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("pricing engine: %w", err)
	}

	eventBus := redisadapter.NewBookingEventBus(redisClient, logger)
	kafkaPublisher := kafka.NewPublisher(kafka.NewWriter([]string{config.KafkaHost}, config.KafkaEventsTopic))

	// Routing is optional. Without an API key ETA computation falls back to
	// the straight-line estimate inside the geo service.
	var routingProvider ports.RoutingProvider
	if config.GoogleMapsAPIKey != "" {
		provider, providerErr := routing.NewGoogleMapsProvider(config.GoogleMapsAPIKey)
		if providerErr != nil {
			return CompositionRoot{}, fmt.Errorf("routing provider: %w", providerErr)
		}
		routingProvider = provider
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		geoService: geoService,
		pricing:    pricing,
		dispatcher: services.NewWorkerDispatcher(geoService),
		publisher:  fanOutPublisher{kafkaPublisher, eventBus},
		cache:      redisadapter.NewLiveLocationCache(redisClient, redisadapter.DefaultLiveLocationTTL),
		observer:   eventBus,
		routing:    routingProvider,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookingCommandHandler(f, c.geoService, c.pricing)
}

func (c *CompositionRoot) CreateCreateWorkerCommandHandler() commands.CreateWorkerCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkerCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignWorkerCommandHandler() commands.AssignWorkerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignWorkerCommandHandler(f, c.geoService, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateChangeBookingStatusCommandHandler() commands.ChangeBookingStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeBookingStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeWorkerStatusCommandHandler() commands.ChangeWorkerStatusCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeWorkerStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateIngestLocationCommandHandler() commands.IngestLocationCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIngestLocationCommandHandler(f, c.geoService, c.cache, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDispatchPendingCommandHandler() commands.DispatchPendingCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchPendingCommandHandler(f, c.dispatcher, c.CreateAssignWorkerCommandHandler())
}

func (c *CompositionRoot) CreateRefreshEtasCommandHandler() commands.RefreshEtasCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshEtasCommandHandler(f, c.geoService, c.routing, c.cache, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetActiveBookingsQueryHandler() queries.GetActiveBookingsQueryHandler {
	return queries.NewGetActiveBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableWorkersQueryHandler() queries.GetAvailableWorkersQueryHandler {
	return queries.NewGetAvailableWorkersQueryHandler(c.gormDB)
}

// BookingObserver exposes the pub/sub side of the event bus for callers
// that want per-booking subscriptions.
func (c *CompositionRoot) BookingObserver() ports.BookingObserver {
	return c.observer
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// fanOutPublisher delivers every event to all configured sinks. A failed
// sink does not stop delivery to the others.
type fanOutPublisher []ports.EventPublisher

func (p fanOutPublisher) Publish(ctx context.Context, event ports.Event) error {
	var errsJoined error
	for _, publisher := range p {
		if err := publisher.Publish(ctx, event); err != nil {
			errsJoined = errors.Join(errsJoined, err)
		}
	}
	return errsJoined
}

// defaultPricingConfig is the injected catalog the engine prices with.
func defaultPricingConfig() services.PricingConfig {
	standardMultipliers := services.TimeMultipliers{Rush: 1.15, Weekend: 1.1, Holiday: 1.25}

	return services.PricingConfig{
		Rates: map[booking.ServiceType]services.ServiceRate{
			booking.ServiceRegular:    {BasePrice: 120, DurationMinutes: 120, PricePerMile: 2, Multipliers: standardMultipliers},
			booking.ServiceDeep:       {BasePrice: 220, DurationMinutes: 240, PricePerMile: 2, Multipliers: standardMultipliers},
			booking.ServiceMoveInOut:  {BasePrice: 280, DurationMinutes: 300, PricePerMile: 2.5, Multipliers: standardMultipliers},
			booking.ServiceAirbnb:     {BasePrice: 80, DurationMinutes: 90, PricePerMile: 2, Multipliers: standardMultipliers},
			booking.ServiceOffice:     {BasePrice: 180, DurationMinutes: 180, PricePerMile: 2.5, Multipliers: standardMultipliers},
			booking.ServiceCommercial: {BasePrice: 320, DurationMinutes: 360, PricePerMile: 3, Multipliers: standardMultipliers},
		},
		AddOns: map[string]float64{
			"inside_cabinets": 30,
			"inside_fridge":   25,
			"inside_oven":     25,
			"inside_windows":  30,
			"laundry":         20,
		},
		FreeRadiusMiles:       5,
		MinimumCharge:         75,
		RecurringDiscountRate: 0.10,
		RushWindows: []services.RushWindow{
			{StartHour: 7, EndHour: 10},
			{StartHour: 16, EndHour: 19},
		},
		Holidays: map[string]struct{}{
			"2026-01-01": {},
			"2026-07-04": {},
			"2026-11-26": {},
			"2026-12-25": {},
		},
	}
}
