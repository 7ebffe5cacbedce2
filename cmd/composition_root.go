package cmd

import (
	"log/slog"

	"salesreport/internal/adapters/out/postgres"
	"salesreport/internal/adapters/out/postgres/eventlog"
	"salesreport/internal/adapters/out/smtp"
	"salesreport/internal/core/application/usecases/commands"
	"salesreport/internal/core/application/usecases/queries"
	"salesreport/internal/core/domain/services"
	"salesreport/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	transport  *smtp.Transport
	eventLog   *eventlog.GormDispatchEventLog
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	transport, err := smtp.NewTransport(smtp.Config{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Username: config.SMTPUsername,
		Password: config.SMTPPassword,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		transport:  transport,
		eventLog:   eventlog.NewGormDispatchEventLog(gormDB),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateAddOrderCommandHandler() commands.AddOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddUserCommandHandler() commands.AddUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddUserCommandHandler(f)
}

func (c *CompositionRoot) CreateSendWeeklyReportCommandHandler() commands.SendWeeklyReportCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})

	observer := eventlog.NewObserver(c.eventLog, c.logger)
	dispatcher := services.NewReportDispatcher(c.transport, observer)

	return commands.NewSendWeeklyReportCommandHandler(f, services.NewRecipientResolver(), dispatcher)
}

func (c *CompositionRoot) CreateGetDispatchLogQueryHandler() queries.GetDispatchLogQueryHandler {
	return queries.NewGetDispatchLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesTotalQueryHandler() queries.GetSalesTotalQueryHandler {
	return queries.NewGetSalesTotalQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(config Config) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSendWeeklyReportCommandHandler(),
		config.ReportCronSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
