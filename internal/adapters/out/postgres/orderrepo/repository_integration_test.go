package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"bistro/internal/adapters/out/postgres/orderrepo"
	"bistro/internal/adapters/out/postgres/zonerepo"
	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/order"
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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	orderRepository *orderrepo.GormOrderRepository
	zoneRepository  *zonerepo.GormZoneRepository
	tracker         *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&zonerepo.ZoneDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, zones").Error)

	// Create fresh repositories and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.orderRepository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	suite.zoneRepository = zonerepo.NewGormZoneRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_OrderWithoutZone_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Asha Verma", nil, 0)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.orderRepository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal("Asha Verma", retrieved.CustomerName())
	suite.Nil(retrieved.Zone(), "Uncovered order should round-trip without a zone")
	suite.Nil(retrieved.Courier())
	suite.Nil(retrieved.DriverCommission())
	suite.Equal(order.Created, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_OrderWithZone_Success() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testZone := suite.createTestZone()
	suite.Require().NoError(suite.zoneRepository.Add(ctx, testZone))

	zoneID := testZone.ID()
	testOrder := suite.createTestOrder("Asha Verma", &zoneID, testZone.DeliveryCharge())

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.orderRepository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Zone())
	suite.True(retrieved.Zone().IsEqual(testZone.ID()))
	suite.InDelta(testZone.DeliveryCharge(), retrieved.DeliveryCharge(), 0.001)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Asha Verma", nil, 0)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	duplicate, err := order.RestoreOrder(
		testOrder.ID(),
		testOrder.CustomerName(),
		testOrder.DeliveryPoint(),
		testOrder.Total(),
		nil,
		testOrder.DeliveryCharge(),
		order.Created,
		nil,
		nil,
	)
	suite.Require().NoError(err)

	err = suite.orderRepository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_FullLifecycle_PersistsEachTransition() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testOrder := suite.createTestOrder("Asha Verma", nil, 0)
	suite.Require().NoError(suite.orderRepository.Add(ctx, testOrder))

	// Assign
	courierID := kernel.NewUUID()
	suite.Require().NoError(testOrder.Assign(courierID))
	suite.Require().NoError(suite.orderRepository.Update(ctx, testOrder))

	retrieved, err := suite.orderRepository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, retrieved.Status())
	suite.Require().NotNil(retrieved.Courier())
	suite.Equal(courierID, *retrieved.Courier())
	suite.Nil(retrieved.DriverCommission())

	// Deliver with a frozen commission snapshot
	commission := 75.5
	suite.Require().NoError(testOrder.Deliver(&commission))
	suite.Require().NoError(suite.orderRepository.Update(ctx, testOrder))

	retrieved, err = suite.orderRepository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrieved.Status())
	suite.Require().NotNil(retrieved.DriverCommission())
	suite.InDelta(75.5, *retrieved.DriverCommission(), 0.001)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CancelledOrder_Persists() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testOrder := suite.createTestOrder("Asha Verma", nil, 0)
	suite.Require().NoError(suite.orderRepository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Cancel())
	suite.Require().NoError(suite.orderRepository.Update(ctx, testOrder))

	retrieved, err := suite.orderRepository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.orderRepository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstInCreatedStatus_SkipsAssignedOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	assignedOrder := suite.createTestOrder("First Customer", nil, 0)
	createdOrder := suite.createTestOrder("Second Customer", nil, 0)

	suite.Require().NoError(suite.orderRepository.Add(ctx, assignedOrder))
	suite.Require().NoError(suite.orderRepository.Add(ctx, createdOrder))

	suite.Require().NoError(assignedOrder.Assign(kernel.NewUUID()))
	suite.Require().NoError(suite.orderRepository.Update(ctx, assignedOrder))

	found, err := suite.orderRepository.GetFirstInCreatedStatus(ctx)
	suite.Require().NoError(err)
	suite.Equal(createdOrder.ID(), found.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstInCreatedStatus_EmptyTable_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.orderRepository.GetFirstInCreatedStatus(ctx)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInAssignedStatus_ReturnsOnlyAssigned() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	createdOrder := suite.createTestOrder("Created Customer", nil, 0)
	assignedOrder := suite.createTestOrder("Assigned Customer", nil, 0)
	deliveredOrder := suite.createTestOrder("Delivered Customer", nil, 0)

	suite.Require().NoError(suite.orderRepository.Add(ctx, createdOrder))
	suite.Require().NoError(suite.orderRepository.Add(ctx, assignedOrder))
	suite.Require().NoError(suite.orderRepository.Add(ctx, deliveredOrder))

	suite.Require().NoError(assignedOrder.Assign(kernel.NewUUID()))
	suite.Require().NoError(suite.orderRepository.Update(ctx, assignedOrder))

	suite.Require().NoError(deliveredOrder.Assign(kernel.NewUUID()))
	commission := 30.0
	suite.Require().NoError(deliveredOrder.Deliver(&commission))
	suite.Require().NoError(suite.orderRepository.Update(ctx, deliveredOrder))

	assigned, err := suite.orderRepository.GetAllInAssignedStatus(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(assigned, 1)
	suite.Equal(assignedOrder.ID(), assigned[0].ID())
}

// createTestZone creates a valid active zone covering central Delhi.
func (suite *OrderRepositoryIntegrationTestSuite) createTestZone() *zone.Zone {
	center, err := kernel.NewGeoPoint(28.6139, 77.2090)
	suite.Require().NoError(err)

	testZone, err := zone.NewZone(kernel.NewUUID(), "Central Delhi", &center, 5, 40)
	suite.Require().NoError(err)
	return testZone
}

// createTestOrder creates a valid order for the given customer.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(
	customerName string,
	zoneID *kernel.UUID,
	deliveryCharge float64,
) *order.Order {
	deliveryPoint, err := kernel.NewGeoPoint(28.61, 77.21)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), customerName, deliveryPoint, 500, zoneID, deliveryCharge)
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
