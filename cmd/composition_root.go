package cmd

import (
	"log/slog"

	"workforce/internal/adapters/out/eventbus"
	"workforce/internal/adapters/out/postgres"
	"workforce/internal/core/application/usecases/commands"
	"workforce/internal/core/application/usecases/queries"
	"workforce/internal/core/domain/services"
	"workforce/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *eventbus.WatermillEventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  eventbus.NewWatermillEventPublisher(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f, services.NewPostingPolicy(c.config.AllowDelegatedPosting))
}

func (c *CompositionRoot) CreateApplyToJobCommandHandler() commands.ApplyToJobCommandHandler {
	var f commands.ApplicationUoWFactory = FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyToJobCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteUserCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteJobCommandHandler() commands.DeleteJobCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteJobCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileSummariesCommandHandler() commands.ReconcileSummariesCommandHandler {
	var f commands.ApplicationUoWFactory = FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileSummariesCommandHandler(f)
}

func (c *CompositionRoot) CreateListJobsQueryHandler() queries.ListJobsQueryHandler {
	return queries.NewListJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobsByCellQueryHandler() queries.JobsByCellQueryHandler {
	return queries.NewJobsByCellQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuditLogQueryHandler() queries.AuditLogQueryHandler {
	return queries.NewAuditLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobSummaryQueryHandler() queries.JobSummaryQueryHandler {
	return queries.NewJobSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReconcileSummariesCommandHandler(),
		c.config.SummaryReconcileSchedule,
		c.logger,
	)
}

// Close releases resources held by long-lived adapters.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncApplicationUoWFactory func() commands.ApplicationUoW

func (f FuncApplicationUoWFactory) Create() commands.ApplicationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
