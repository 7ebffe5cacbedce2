package eventlog_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"salesreport/internal/adapters/out/postgres/eventlog"
	"salesreport/internal/core/domain/model/report"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DispatchEventLogIntegrationTestSuite verifies the append-only dispatch log
// against a real PostgreSQL instance.
type DispatchEventLogIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	log       *eventlog.GormDispatchEventLog
}

func (suite *DispatchEventLogIntegrationTestSuite) SetupSuite() {
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

	suite.log = eventlog.NewGormDispatchEventLog(db)
}

func (suite *DispatchEventLogIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *DispatchEventLogIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE dispatch_events").Error
	suite.Require().NoError(err)
}

func (suite *DispatchEventLogIntegrationTestSuite) countRows() int64 {
	var count int64
	err := suite.db.Model(&eventlog.DispatchEventDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	return count
}

func (suite *DispatchEventLogIntegrationTestSuite) TestAppend_RecordsEvent() {
	sentAt := time.Date(2025, 6, 16, 8, 0, 1, 0, time.UTC)
	event := report.DispatchEvent{
		RecipientName:    "Alice Smith",
		RecipientAddress: "alice@example.com",
		SentAt:           sentAt,
	}

	err := suite.log.Append(context.Background(), event)

	suite.Require().NoError(err)

	var dto eventlog.DispatchEventDTO
	suite.Require().NoError(suite.db.First(&dto).Error)
	suite.Equal("Alice Smith", dto.RecipientName)
	suite.Equal("alice@example.com", dto.RecipientAddress)
	suite.True(dto.SentAt.Equal(sentAt))
}

func (suite *DispatchEventLogIntegrationTestSuite) TestAppend_IsAppendOnly() {
	ctx := context.Background()

	for i := range 3 {
		event := report.DispatchEvent{
			RecipientName:    "Alice Smith",
			RecipientAddress: "alice@example.com",
			SentAt:           time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		suite.Require().NoError(suite.log.Append(ctx, event))
	}

	suite.EqualValues(3, suite.countRows())
}

func (suite *DispatchEventLogIntegrationTestSuite) TestObserver_AppendsThroughLog() {
	observer := eventlog.NewObserver(suite.log, slog.Default())

	observer.Notify(report.DispatchEvent{
		RecipientName:    "Bob Jones",
		RecipientAddress: "bob@example.com",
		SentAt:           time.Now().UTC(),
	})

	suite.EqualValues(1, suite.countRows())
}

func TestDispatchEventLogIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DispatchEventLogIntegrationTestSuite))
}
