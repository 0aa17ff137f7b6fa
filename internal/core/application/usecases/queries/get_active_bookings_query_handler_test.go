package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/bookingrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveBookingsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveBookingsQueryHandler
}

func (suite *GetActiveBookingsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&bookingrepo.BookingDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveBookingsQueryHandler(db)
}

func (suite *GetActiveBookingsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveBookingsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE bookings CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveBookingsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveBookingsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveBookingsQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOpenBookingsOrderedBySchedule() {
	base := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	workerID := kernel.NewUUID()

	later := suite.saveBooking(base.Add(4*time.Hour), nil, booking.Pending)
	earlier := suite.saveBooking(base, &workerID, booking.EnRoute)

	completedWorker := kernel.NewUUID()
	suite.saveBooking(base.Add(time.Hour), &completedWorker, booking.Completed)
	suite.saveBooking(base.Add(2*time.Hour), nil, booking.Cancelled)

	query := queries.NewGetActiveBookingsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(earlier.ID(), result[0].ID)
	suite.Equal("en_route", result[0].Status)
	suite.Require().NotNil(result[0].WorkerID)
	suite.Equal(workerID, *result[0].WorkerID)

	suite.Equal(later.ID(), result[1].ID)
	suite.Equal("pending", result[1].Status)
	suite.Nil(result[1].WorkerID)
}

func (suite *GetActiveBookingsQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	scheduledAt := time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)
	saved := suite.saveBooking(scheduledAt, nil, booking.Pending)

	query := queries.NewGetActiveBookingsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	suite.Equal(saved.ID(), result[0].ID)
	suite.Equal(saved.CustomerID(), result[0].CustomerID)
	suite.Equal("regular", result[0].ServiceType)
	suite.True(scheduledAt.Equal(result[0].ScheduledAt))
	isEqual, err := saved.Location().IsEqual(result[0].Location)
	suite.Require().NoError(err)
	suite.True(isEqual)
	suite.InDelta(saved.Price(), result[0].Price, 0.001)
}

func (suite *GetActiveBookingsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveBookingsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveBookingsQuery constructor")
}

func (suite *GetActiveBookingsQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.saveBooking(time.Now().UTC().Add(time.Hour), nil, booking.Pending)

	query := queries.NewGetActiveBookingsQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetActiveBookingsQueryHandlerTestSuite) saveBooking(
	scheduledAt time.Time,
	workerID *kernel.UUID,
	status booking.Status,
) *booking.Booking {
	location, err := kernel.NewGeoPoint(40.7128, -74.0060)
	suite.Require().NoError(err)

	now := time.Now().UTC()
	saved, err := booking.RestoreBooking(
		kernel.NewUUID(),
		kernel.NewUUID(),
		workerID,
		booking.ServiceRegular,
		scheduledAt,
		location,
		status,
		120,
		nil,
		false,
		"",
		now,
		now,
	)
	suite.Require().NoError(err)

	repo := bookingrepo.NewGormBookingRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), saved))

	return saved
}

func TestGetActiveBookingsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveBookingsQueryHandlerTestSuite))
}

// noopAggregateTracker satisfies the repository's tracker dependency.
// Query tests don't care about aggregate tracking.
type noopAggregateTracker struct{}

func (t *noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
