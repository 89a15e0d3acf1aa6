package queries_test

import (
	"context"
	"testing"
	"time"

	"bistro/internal/adapters/out/postgres/orderrepo"
	"bistro/internal/core/application/usecases/queries"
	"bistro/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetUncompletedOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetUncompletedOrdersQueryHandler
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetUncompletedOrdersQueryHandler(db)
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetUncompletedOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyPendingOrders() {
	suite.seedOrder("Created Customer", order.Created)
	suite.seedOrder("Assigned Customer", order.Assigned)
	suite.seedOrder("Delivered Customer", order.Delivered)
	suite.seedOrder("Cancelled Customer", order.Cancelled)

	query := queries.NewGetUncompletedOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	names := []string{result[0].CustomerName, result[1].CustomerName}
	suite.Contains(names, "Created Customer")
	suite.Contains(names, "Assigned Customer")

	for _, orderResp := range result {
		suite.Contains([]string{"Created", "Assigned"}, orderResp.Status)
		suite.InDelta(28.61, orderResp.DeliveryPoint.Latitude(), 0.000001)
		suite.InDelta(77.21, orderResp.DeliveryPoint.Longitude(), 0.000001)
	}
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetUncompletedOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetUncompletedOrdersQueryIsNotConstructed)
}

func (suite *GetUncompletedOrdersQueryHandlerTestSuite) seedOrder(customerName string, status order.Status) {
	dto := orderrepo.OrderDTO{
		ID:           uuid.New(),
		CustomerName: customerName,
		DeliveryLat:  28.61,
		DeliveryLon:  77.21,
		Total:        500,
		Status:       int(status),
	}
	if status == order.Assigned || status == order.Delivered {
		courierID := uuid.New()
		dto.CourierID = &courierID
	}
	if status == order.Delivered {
		commission := 50.0
		dto.DriverCommission = &commission
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func TestGetUncompletedOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUncompletedOrdersQueryHandlerTestSuite))
}
