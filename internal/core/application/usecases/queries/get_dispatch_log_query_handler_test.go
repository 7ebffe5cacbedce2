package queries_test

import (
	"context"
	"testing"
	"time"

	"salesreport/internal/adapters/out/postgres/eventlog"
	"salesreport/internal/core/application/usecases/queries"
	"salesreport/internal/core/domain/model/report"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDispatchLogQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDispatchLogQueryHandler
	log       *eventlog.GormDispatchEventLog
}

func (suite *GetDispatchLogQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&eventlog.DispatchEventDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDispatchLogQueryHandler(db)
	suite.log = eventlog.NewGormDispatchEventLog(db)
}

func (suite *GetDispatchLogQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDispatchLogQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE dispatch_events").Error
	suite.Require().NoError(err)
}

func (suite *GetDispatchLogQueryHandlerTestSuite) appendEvent(name, address string, sentAt time.Time) {
	err := suite.log.Append(context.Background(), report.DispatchEvent{
		RecipientName:    name,
		RecipientAddress: address,
		SentAt:           sentAt,
	})
	suite.Require().NoError(err)
}

func (suite *GetDispatchLogQueryHandlerTestSuite) TestHandle_EmptyLog_ReturnsEmptySlice() {
	query, err := queries.NewGetDispatchLogQuery(10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDispatchLogQueryHandlerTestSuite) TestHandle_ReturnsNewestFirst() {
	base := time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)
	suite.appendEvent("Alice Smith", "alice@example.com", base)
	suite.appendEvent("Bob Jones", "bob@example.com", base.Add(time.Second))
	suite.appendEvent("Carol White", "carol@example.com", base.Add(2*time.Second))

	query, err := queries.NewGetDispatchLogQuery(10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("carol@example.com", result[0].RecipientAddress)
	suite.Equal("bob@example.com", result[1].RecipientAddress)
	suite.Equal("alice@example.com", result[2].RecipientAddress)
}

func (suite *GetDispatchLogQueryHandlerTestSuite) TestHandle_RespectsLimit() {
	base := time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)
	for i := range 5 {
		suite.appendEvent("Alice Smith", "alice@example.com", base.Add(time.Duration(i)*time.Second))
	}

	query, err := queries.NewGetDispatchLogQuery(2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *GetDispatchLogQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDispatchLogQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetDispatchLogQuery constructor")
}

func TestGetDispatchLogQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDispatchLogQueryHandlerTestSuite))
}
