package locationrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/locationrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/location"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LocationRepositoryIntegrationTestSuite provides integration tests for the
// append-only location history using PostgreSQL containers.
type LocationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *locationrepo.GormLocationRepository
}

func (suite *LocationRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&locationrepo.SampleDTO{}))
}

func (suite *LocationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE location_samples").Error)

	suite.repository = locationrepo.NewGormLocationRepository(suite.db)
}

func (suite *LocationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LocationRepositoryIntegrationTestSuite) TestAppend_ValidSample_PersistsRow() {
	ctx := context.Background()

	point, err := kernel.NewGeoPoint(40.7128, -74.0060)
	suite.Require().NoError(err)

	heading := 182.5
	speed := 12.0
	recordedAt := time.Date(2026, 9, 1, 8, 15, 0, 0, time.UTC)

	sample, err := location.NewSample(kernel.NewUUID(), point, &heading, &speed, recordedAt)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Append(ctx, sample))

	var dto locationrepo.SampleDTO
	suite.Require().NoError(suite.db.First(&dto).Error)
	suite.Equal(sample.WorkerID().Bytes(), dto.WorkerID)
	suite.InDelta(40.7128, dto.Latitude, 0.000001)
	suite.InDelta(-74.0060, dto.Longitude, 0.000001)
	suite.Require().NotNil(dto.Heading)
	suite.InDelta(182.5, *dto.Heading, 0.001)
	suite.Require().NotNil(dto.Speed)
	suite.InDelta(12.0, *dto.Speed, 0.001)
	suite.True(recordedAt.Equal(dto.RecordedAt.UTC()))
}

func (suite *LocationRepositoryIntegrationTestSuite) TestAppend_HistoryIsAppendOnly() {
	ctx := context.Background()

	workerID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Second)

	for i := range 3 {
		point, err := kernel.NewGeoPoint(40.7128+float64(i)*0.001, -74.0060)
		suite.Require().NoError(err)

		sample, err := location.NewSample(workerID, point, nil, nil, base.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Append(ctx, sample))
	}

	var count int64
	suite.Require().NoError(suite.db.Model(&locationrepo.SampleDTO{}).Count(&count).Error)
	suite.Equal(int64(3), count)
}

func TestLocationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryIntegrationTestSuite))
}
