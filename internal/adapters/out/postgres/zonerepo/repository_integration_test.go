package zonerepo_test

import (
	"context"
	"testing"
	"time"

	"bistro/internal/adapters/out/postgres/zonerepo"
	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/zone"
	"bistro/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ZoneRepositoryIntegrationTestSuite provides integration tests for ZoneRepository
// using PostgreSQL containers to verify database persistence behavior.
type ZoneRepositoryIntegrationTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	zoneRepository *zonerepo.GormZoneRepository
	tracker        *MockAggregateTracker
}

func (suite *ZoneRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&zonerepo.ZoneDTO{}))
}

func (suite *ZoneRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE zones").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.zoneRepository = zonerepo.NewGormZoneRepository(suite.db, suite.tracker)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestAdd_ValidZone_Success() {
	ctx := context.Background()

	testZone := suite.createTestZone("Central Delhi", 28.6139, 77.2090)

	suite.tracker.On("TrackAggregate", testZone.ID(), testZone).Once()

	err := suite.zoneRepository.Add(ctx, testZone)
	suite.Require().NoError(err)

	retrieved, err := suite.zoneRepository.Get(ctx, testZone.ID())
	suite.Require().NoError(err)
	suite.Equal(testZone.ID(), retrieved.ID())
	suite.Equal("Central Delhi", retrieved.Name())
	suite.Require().NotNil(retrieved.Center())
	suite.InDelta(28.6139, retrieved.Center().Latitude(), 0.000001)
	suite.InDelta(77.2090, retrieved.Center().Longitude(), 0.000001)
	suite.InDelta(5.0, retrieved.RadiusKm(), 0.001)
	suite.InDelta(40.0, retrieved.DeliveryCharge(), 0.001)
	suite.True(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()

	testZone := suite.createTestZone("South Delhi", 28.5245, 77.1855)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	err := suite.zoneRepository.Add(ctx, testZone)
	suite.Require().NoError(err)

	duplicate, err := zone.RestoreZone(
		testZone.ID(), "South Delhi Copy", testZone.Center(),
		testZone.RadiusKm(), testZone.DeliveryCharge(), true,
	)
	suite.Require().NoError(err)

	err = suite.zoneRepository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestAdd_ZoneWithoutCenter_Success() {
	ctx := context.Background()

	flatRateZone, err := zone.NewZone(kernel.NewUUID(), "Phone Orders", nil, 1, 25)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", flatRateZone.ID(), flatRateZone).Once()

	err = suite.zoneRepository.Add(ctx, flatRateZone)
	suite.Require().NoError(err)

	retrieved, err := suite.zoneRepository.Get(ctx, flatRateZone.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.Center(), "Flat-rate zone should round-trip without a center")
	suite.False(retrieved.HasCenter())
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestUpdate_ExistingZone_Success() {
	ctx := context.Background()

	testZone := suite.createTestZone("North Delhi", 28.7041, 77.1025)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	err := suite.zoneRepository.Add(ctx, testZone)
	suite.Require().NoError(err)

	// Deactivate and persist the change
	testZone.Deactivate()
	err = suite.zoneRepository.Update(ctx, testZone)
	suite.Require().NoError(err)

	retrieved, err := suite.zoneRepository.Get(ctx, testZone.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive(), "Deactivation should persist")
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestGet_NonExistentZone_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.zoneRepository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestGetAllActive_ExcludesDeactivatedZones() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	activeZone := suite.createTestZone("Active Zone", 28.6139, 77.2090)
	inactiveZone := suite.createTestZone("Inactive Zone", 28.5245, 77.1855)
	inactiveZone.Deactivate()

	suite.Require().NoError(suite.zoneRepository.Add(ctx, activeZone))
	suite.Require().NoError(suite.zoneRepository.Add(ctx, inactiveZone))

	allZones, err := suite.zoneRepository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(allZones, 2, "GetAll should include deactivated zones")

	activeZones, err := suite.zoneRepository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(activeZones, 1)
	suite.Equal(activeZone.ID(), activeZones[0].ID())
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestGetAll_OrderedByName() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	zoneB := suite.createTestZone("Bravo", 28.61, 77.20)
	zoneA := suite.createTestZone("Alpha", 28.62, 77.21)
	zoneC := suite.createTestZone("Charlie", 28.63, 77.22)

	suite.Require().NoError(suite.zoneRepository.Add(ctx, zoneB))
	suite.Require().NoError(suite.zoneRepository.Add(ctx, zoneC))
	suite.Require().NoError(suite.zoneRepository.Add(ctx, zoneA))

	zones, err := suite.zoneRepository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(zones, 3)
	suite.Equal("Alpha", zones[0].Name())
	suite.Equal("Bravo", zones[1].Name())
	suite.Equal("Charlie", zones[2].Name())
}

// createTestZone creates a valid active zone with a 5 km radius and a 40 currency
// unit delivery charge centered at the given coordinate.
func (suite *ZoneRepositoryIntegrationTestSuite) createTestZone(name string, lat, lon float64) *zone.Zone {
	center, err := kernel.NewGeoPoint(lat, lon)
	suite.Require().NoError(err)

	testZone, err := zone.NewZone(kernel.NewUUID(), name, &center, 5, 40)
	suite.Require().NoError(err)
	return testZone
}

func TestZoneRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ZoneRepositoryIntegrationTestSuite))
}
