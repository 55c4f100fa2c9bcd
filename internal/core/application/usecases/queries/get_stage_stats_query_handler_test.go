package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetStageStatsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetStageStatsQueryHandler
}

func (suite *GetStageStatsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &orderrepo.TransitionDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetStageStatsQueryHandler(db)
}

func (suite *GetStageStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetStageStatsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_transitions").Error
	suite.Require().NoError(err)
}

func (suite *GetStageStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetStageStatsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetStageStatsQueryHandlerTestSuite) TestHandle_CountsOrdersPerStage() {
	actor, err := kernel.NewActor("officer-1", "Dana")
	suite.Require().NoError(err)
	now := time.Now().UTC()

	confirmed1 := suite.createConfirmedOrder()
	confirmed2 := suite.createConfirmedOrder()
	picking := suite.createConfirmedOrder()
	suite.Require().NoError(picking.StartPacking(actor, now))

	suite.saveOrders(confirmed1, confirmed2, picking)

	query := queries.NewGetStageStatsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2, "only stages with orders appear")
	suite.Equal("order-confirmed", result[0].Stage)
	suite.Equal(int64(2), result[0].Count)
	suite.Equal("picking-order", result[1].Stage)
	suite.Equal(int64(1), result[1].Count)
}

func (suite *GetStageStatsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetStageStatsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetStageStatsQuery constructor")
}

func (suite *GetStageStatsQueryHandlerTestSuite) createConfirmedOrder() *order.Order {
	now := time.Now().UTC()

	item, err := order.NewItem("SKU-100", 1, 1.0)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		"customer-7",
		[]*order.Item{item},
		"12 Harbor Lane",
		now.Add(4*time.Hour),
		"14:00-16:00",
		4_500,
		0.4,
		now,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *GetStageStatsQueryHandlerTestSuite) saveOrders(orders ...*order.Order) {
	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	for _, testOrder := range orders {
		err := repo.Add(context.Background(), testOrder)
		suite.Require().NoError(err)
	}
}

func TestGetStageStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetStageStatsQueryHandlerTestSuite))
}
