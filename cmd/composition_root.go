package cmd

import (
	"log/slog"
	"time"

	"freight/internal/adapters/in/http"
	"freight/internal/adapters/in/ws"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/eventhandlers"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	eventBus   ports.EventBus
	hub        *ws.Hub
	dispatcher *eventhandlers.NotificationDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	eventBus ports.EventBus,
	operators []kernel.UUID,
	logger *slog.Logger,
) CompositionRoot {
	hub := ws.NewHub(logger)
	dispatcher := eventhandlers.NewNotificationDispatcher(hub, eventBus, operators, logger)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		eventBus:   eventBus,
		hub:        hub,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (c *CompositionRoot) WebSocketHub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) NotificationDispatcher() *eventhandlers.NotificationDispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitBidCommandHandler() commands.SubmitBidCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitBidCommandHandler(f, c.eventBus)
}

func (c *CompositionRoot) CreateAcceptBidCommandHandler() commands.AcceptBidCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptBidCommandHandler(f, c.eventBus)
}

func (c *CompositionRoot) CreateRejectBidCommandHandler() commands.RejectBidCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectBidCommandHandler(f, c.eventBus)
}

func (c *CompositionRoot) CreateAdvanceJobCommandHandler() commands.AdvanceJobCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceJobCommandHandler(f, c.eventBus)
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelJobCommandHandler(f, c.eventBus)
}

func (c *CompositionRoot) CreateReportPositionCommandHandler() commands.ReportPositionCommandHandler {
	var f commands.PositionUoWFactory = FuncPositionUoWFactory(func() commands.PositionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportPositionCommandHandler(f, c.eventBus)
}

func (c *CompositionRoot) CreateMarkCarrierOfflineCommandHandler() commands.MarkCarrierOfflineCommandHandler {
	var f commands.PositionUoWFactory = FuncPositionUoWFactory(func() commands.PositionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkCarrierOfflineCommandHandler(f, c.eventBus)
}

func (c *CompositionRoot) CreateGetActiveJobsQueryHandler() queries.GetActiveJobsQueryHandler {
	return queries.NewGetActiveJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobBidsQueryHandler() queries.GetJobBidsQueryHandler {
	return queries.NewGetJobBidsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierPositionQueryHandler() queries.GetCarrierPositionQueryHandler {
	return queries.NewGetCarrierPositionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierPositionsQueryHandler() queries.GetCarrierPositionsQueryHandler {
	return queries.NewGetCarrierPositionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.dispatcher)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateJobCommandHandler(),
		c.CreateSubmitBidCommandHandler(),
		c.CreateAcceptBidCommandHandler(),
		c.CreateRejectBidCommandHandler(),
		c.CreateAdvanceJobCommandHandler(),
		c.CreateCancelJobCommandHandler(),
		c.CreateReportPositionCommandHandler(),
		c.CreateGetActiveJobsQueryHandler(),
		c.CreateGetJobBidsQueryHandler(),
		c.CreateGetCarrierPositionQueryHandler(),
		c.CreateGetCarrierPositionsQueryHandler(),
		c.CreateGetNotificationsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateGeofenceReactor() *eventhandlers.GeofenceReactor {
	return eventhandlers.NewGeofenceReactor(
		services.NewProximityTracker(),
		c.uowFactory.Create().JobRepository(),
		c.eventBus,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager(staleThreshold time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		c.uowFactory.Create().PositionRepository(),
		c.CreateMarkCarrierOfflineCommandHandler(),
		staleThreshold,
		c.logger,
	)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncPositionUoWFactory func() commands.PositionUoW

func (f FuncPositionUoWFactory) Create() commands.PositionUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
