package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"salesreport/internal/adapters/out/postgres/orderrepo"
	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/core/domain/model/order"
	"salesreport/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{})
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE line_items").Error
	suite.Require().NoError(err)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(orderedAt time.Time, prices ...string) *order.Order {
	items := make([]order.LineItem, 0, len(prices))
	for _, price := range prices {
		unitPrice, err := decimal.NewFromString(price)
		suite.Require().NoError(err)
		item, err := order.NewLineItem(unitPrice, 1)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), orderedAt, items)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripPreservesTotal() {
	ctx := context.Background()
	orderedAt := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	unitPrice, err := decimal.NewFromString("19.99")
	suite.Require().NoError(err)
	twoUnits, err := order.NewLineItem(unitPrice, 2)
	suite.Require().NoError(err)
	single, err := order.NewLineItem(decimal.RequireFromString("3.50"), 1)
	suite.Require().NoError(err)

	original, err := order.NewOrder(kernel.NewUUID(), orderedAt, []order.LineItem{twoUnits, single})
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, original)
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(original))
	suite.True(restored.Total().Equal(decimal.RequireFromString("43.48")),
		"total mismatch: got %s", restored.Total())
	suite.Len(restored.Items(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_EmptyOrderPersists() {
	ctx := context.Background()
	o := suite.newOrder(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))

	err := suite.repository.Add(ctx, o)
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(restored.Total().IsZero())
	suite.Empty(restored.Items())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	result, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetBetween_BoundsAreExclusive() {
	ctx := context.Background()
	from := time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)

	atLowerBound := suite.newOrder(from, "1.00")
	inside := suite.newOrder(from.Add(time.Hour), "2.00")
	atUpperBound := suite.newOrder(to, "3.00")
	outside := suite.newOrder(to.Add(time.Hour), "4.00")

	for _, o := range []*order.Order{atLowerBound, inside, atUpperBound, outside} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	result, err := suite.repository.GetBetween(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].IsEqual(inside))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetBetween_EmptyWindow() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.newOrder(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "5.00")))

	result, err := suite.repository.GetBetween(ctx,
		time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetBetween_LoadsLineItems() {
	ctx := context.Background()
	from := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	o := suite.newOrder(from.Add(24*time.Hour), "10.00", "20.00")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	result, err := suite.repository.GetBetween(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Len(result[0].Items(), 2)
	suite.True(result[0].Total().Equal(decimal.RequireFromString("30.00")))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_InvalidOrderRejected() {
	ctx := context.Background()
	var invalid order.Order

	err := suite.repository.Add(ctx, &invalid)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
