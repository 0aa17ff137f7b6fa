package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createBookingHandler       commands.CreateBookingCommandHandler
	createWorkerHandler        commands.CreateWorkerCommandHandler
	assignWorkerHandler        commands.AssignWorkerCommandHandler
	changeBookingStatusHandler commands.ChangeBookingStatusCommandHandler
	changeWorkerStatusHandler  commands.ChangeWorkerStatusCommandHandler
	ingestLocationHandler      commands.IngestLocationCommandHandler

	// Query handlers
	getActiveBookingsHandler   queries.GetActiveBookingsQueryHandler
	getAvailableWorkersHandler queries.GetAvailableWorkersQueryHandler

	observer ports.BookingObserver
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createBookingHandler commands.CreateBookingCommandHandler,
	createWorkerHandler commands.CreateWorkerCommandHandler,
	assignWorkerHandler commands.AssignWorkerCommandHandler,
	changeBookingStatusHandler commands.ChangeBookingStatusCommandHandler,
	changeWorkerStatusHandler commands.ChangeWorkerStatusCommandHandler,
	ingestLocationHandler commands.IngestLocationCommandHandler,
	getActiveBookingsHandler queries.GetActiveBookingsQueryHandler,
	getAvailableWorkersHandler queries.GetAvailableWorkersQueryHandler,
	observer ports.BookingObserver,
) *Server {
	return &Server{
		createBookingHandler:       createBookingHandler,
		createWorkerHandler:        createWorkerHandler,
		assignWorkerHandler:        assignWorkerHandler,
		changeBookingStatusHandler: changeBookingStatusHandler,
		changeWorkerStatusHandler:  changeWorkerStatusHandler,
		ingestLocationHandler:      ingestLocationHandler,
		getActiveBookingsHandler:   getActiveBookingsHandler,
		getAvailableWorkersHandler: getAvailableWorkersHandler,
		observer:                   observer,
	}
}

// CreateBooking handles POST /api/v1/bookings - creates a new booking.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var newBooking servers.NewBooking
	if err := ctx.Bind(&newBooking); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromBytes(newBooking.CustomerId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id: " + err.Error(),
		})
	}

	var addOnIDs []string
	if newBooking.AddOnIds != nil {
		addOnIDs = *newBooking.AddOnIds
	}
	recurring := newBooking.Recurring != nil && *newBooking.Recurring
	var discountPct float64
	if newBooking.SubscriptionDiscountPct != nil {
		discountPct = *newBooking.SubscriptionDiscountPct
	}
	var notes string
	if newBooking.Notes != nil {
		notes = *newBooking.Notes
	}

	location, err := kernel.NewGeoPoint(newBooking.Location.Latitude, newBooking.Location.Longitude)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid booking location: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(),
		customerID,
		booking.ServiceType(newBooking.ServiceType),
		newBooking.ScheduledAt,
		location,
		addOnIDs,
		recurring,
		discountPct,
		notes,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid booking data: " + err.Error(),
		})
	}

	if handleErr := s.createBookingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrOutOfServiceArea) {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Booking location is outside the service area",
			})
		}

		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to create booking",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetActiveBookings handles GET /api/v1/bookings/active - retrieves all open bookings.
func (s *Server) GetActiveBookings(ctx echo.Context) error {
	query := queries.NewGetActiveBookingsQuery()

	bookings, err := s.getActiveBookingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve bookings",
		})
	}

	response := make([]servers.Booking, len(bookings))
	for i, b := range bookings {
		var workerID *openapi_types.UUID
		if b.WorkerID != nil {
			googleUUID := b.WorkerID.Bytes()
			workerID = &googleUUID
		}

		response[i] = servers.Booking{
			Id:         b.ID.Bytes(),
			CustomerId: b.CustomerID.Bytes(),
			WorkerId:   workerID,
			Location: servers.GeoPoint{
				Latitude:  b.Location.Latitude(),
				Longitude: b.Location.Longitude(),
			},
			ServiceType: b.ServiceType,
			Status:      b.Status,
			ScheduledAt: b.ScheduledAt,
			Price:       b.Price,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignBooking handles POST /api/v1/bookings/{bookingId}/assign - claims a
// pending booking for a worker.
func (s *Server) AssignBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	var request servers.AssignWorkerRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	bookingID, err := kernel.UUIDFromBytes(bookingId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid booking id: " + err.Error(),
		})
	}
	workerID, err := kernel.UUIDFromBytes(request.WorkerId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid worker id: " + err.Error(),
		})
	}

	cmd, err := commands.NewAssignWorkerCommand(bookingID, workerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid assignment data: " + err.Error(),
		})
	}

	if _, handleErr := s.assignWorkerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(assignmentErrorStatus(handleErr), servers.Error{
			Code:    int32(assignmentErrorStatus(handleErr)),
			Message: "Failed to assign worker: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// WatchBooking handles GET /api/v1/bookings/{bookingId}/events - streams
// events about one booking as server-sent events until the client leaves.
func (s *Server) WatchBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	bookingID, err := kernel.UUIDFromBytes(bookingId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid booking id: " + err.Error(),
		})
	}

	requestCtx := ctx.Request().Context()
	events := make(chan ports.Event, 16)

	unsubscribe, err := s.observer.Subscribe(requestCtx, bookingID.String(), func(event ports.Event) {
		// Drop events a slow client cannot keep up with.
		select {
		case events <- event:
		default:
		}
	})
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to subscribe to booking events",
		})
	}
	defer unsubscribe()

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set("Cache-Control", "no-cache")
	response.Header().Set("Connection", "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()

	for {
		select {
		case <-requestCtx.Done():
			return nil
		case event := <-events:
			payload, marshalErr := json.Marshal(event.Payload)
			if marshalErr != nil {
				continue
			}
			if _, writeErr := fmt.Fprintf(response, "event: %s\ndata: %s\n\n", event.Type, payload); writeErr != nil {
				return nil
			}
			response.Flush()
		}
	}
}

// ChangeBookingStatus handles POST /api/v1/bookings/{bookingId}/status.
func (s *Server) ChangeBookingStatus(ctx echo.Context, bookingId openapi_types.UUID) error {
	var change servers.BookingStatusChange
	if err := ctx.Bind(&change); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	bookingID, err := kernel.UUIDFromBytes(bookingId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid booking id: " + err.Error(),
		})
	}

	target, err := booking.StatusFromString(change.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid booking status: " + err.Error(),
		})
	}

	cmd, err := commands.NewChangeBookingStatusCommand(bookingID, target)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	if handleErr := s.changeBookingStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(transitionErrorStatus(handleErr), servers.Error{
			Code:    int32(transitionErrorStatus(handleErr)),
			Message: "Failed to change booking status: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateWorker handles POST /api/v1/workers - registers a new worker.
func (s *Server) CreateWorker(ctx echo.Context) error {
	var newWorker servers.NewWorker
	if err := ctx.Bind(&newWorker); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	profileID, err := kernel.UUIDFromBytes(newWorker.ProfileId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid profile id: " + err.Error(),
		})
	}

	initialStatus := worker.Offline
	if newWorker.Status != nil {
		initialStatus, err = worker.StatusFromString(*newWorker.Status)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid worker status: " + err.Error(),
			})
		}
	}

	maxConcurrentJobs := worker.DefaultMaxConcurrentJobs
	if newWorker.MaxConcurrentJobs != nil {
		maxConcurrentJobs = *newWorker.MaxConcurrentJobs
	}

	cmd, err := commands.NewCreateWorkerCommand(kernel.NewUUID(), profileID, initialStatus, maxConcurrentJobs)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid worker data: " + err.Error(),
		})
	}

	if handleErr := s.createWorkerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to register worker",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetAvailableWorkers handles GET /api/v1/workers/available.
func (s *Server) GetAvailableWorkers(ctx echo.Context) error {
	query := queries.NewGetAvailableWorkersQuery()

	workers, err := s.getAvailableWorkersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve workers",
		})
	}

	response := make([]servers.Worker, len(workers))
	for i, w := range workers {
		var location *servers.GeoPoint
		if w.Location != nil {
			location = &servers.GeoPoint{
				Latitude:  w.Location.Latitude(),
				Longitude: w.Location.Longitude(),
			}
		}

		response[i] = servers.Worker{
			Id:                w.ID.Bytes(),
			Status:            w.Status,
			Location:          location,
			LocationUpdatedAt: w.LocationUpdatedAt,
			ActiveJobs:        w.ActiveJobs,
			MaxConcurrentJobs: w.MaxConcurrentJobs,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeWorkerStatus handles POST /api/v1/workers/{workerId}/status.
func (s *Server) ChangeWorkerStatus(ctx echo.Context, workerId openapi_types.UUID) error {
	var change servers.WorkerStatusChange
	if err := ctx.Bind(&change); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	workerID, err := kernel.UUIDFromBytes(workerId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid worker id: " + err.Error(),
		})
	}

	target, err := worker.StatusFromString(change.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid worker status: " + err.Error(),
		})
	}

	cmd, err := commands.NewChangeWorkerStatusCommand(workerID, target)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	if handleErr := s.changeWorkerStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(transitionErrorStatus(handleErr), servers.Error{
			Code:    int32(transitionErrorStatus(handleErr)),
			Message: "Failed to change worker status: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateWorkerLocation handles POST /api/v1/workers/{workerId}/location.
func (s *Server) UpdateWorkerLocation(ctx echo.Context, workerId openapi_types.UUID) error {
	var update servers.LocationUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	workerID, err := kernel.UUIDFromBytes(workerId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid worker id: " + err.Error(),
		})
	}

	cmd, err := commands.NewIngestLocationCommand(
		workerID,
		update.Latitude,
		update.Longitude,
		update.Heading,
		update.Speed,
		update.RecordedAt,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid position data: " + err.Error(),
		})
	}

	if handleErr := s.ingestLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Unknown worker",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to record position",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// assignmentErrorStatus maps coordinator failures onto response codes. Losing
// the claim race and saturated workers are conflicts the caller can retry
// against another pair, a missing booking or worker is the caller's mistake.
func assignmentErrorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict), errors.Is(err, errs.ErrCapacityExceeded):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// transitionErrorStatus maps lifecycle transition failures onto response codes.
func transitionErrorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
