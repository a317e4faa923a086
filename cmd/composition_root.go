package cmd

import (
	"log/slog"
	"time"

	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/metrics"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg           Config
	tokens        httpadapter.Tokens
	uowFactory    ports.UnitOfWorkFactory
	scheduleStore ports.ScheduleStore
	metrics       ports.StatusMetrics
	resolver      *schedule.Resolver
	engine        services.StatusEngine
	logger        *slog.Logger
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	scheduleStore ports.ScheduleStore,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) (CompositionRoot, error) {
	location, err := cfg.Location()
	if err != nil {
		return CompositionRoot{}, err
	}
	tokens, err := httpadapter.ParseTokens(cfg.APITokens)
	if err != nil {
		return CompositionRoot{}, err
	}
	statusMetrics, err := metrics.NewPromStatusMetrics(registerer)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:           cfg,
		tokens:        tokens,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB),
		scheduleStore: scheduleStore,
		metrics:       statusMetrics,
		resolver:      schedule.NewResolver(location, logger, time.Now),
		engine:        services.NewStatusEngine(cfg.TransitionPolicy(), time.Now),
		logger:        logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.metrics, time.Now, nil)
}

func (c *CompositionRoot) CreateSetShipmentStatusCommandHandler() commands.SetShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetShipmentStatusCommandHandler(f, c.engine, c.metrics)
}

func (c *CompositionRoot) CreateCreateTransferCommandHandler() commands.CreateTransferCommandHandler {
	var f commands.TransferUoWFactory = FuncTransferUoWFactory(func() commands.TransferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTransferCommandHandler(f, time.Now, nil)
}

func (c *CompositionRoot) CreateUpdateScheduleCommandHandler() commands.UpdateScheduleCommandHandler {
	return commands.NewUpdateScheduleCommandHandler(c.scheduleStore, time.Now, c.logger)
}

// Query handlers read through a unit of work that never begins a
// transaction, so they run on the plain connection.

func (c *CompositionRoot) CreateGetShipmentsGroupedByBucketQueryHandler() queries.GetShipmentsGroupedByBucketQueryHandler {
	return queries.NewGetShipmentsGroupedByBucketQueryHandler(
		c.uowFactory.Create().ShipmentRepository(), c.scheduleStore, c.resolver)
}

func (c *CompositionRoot) CreateGetTransfersGroupedQueryHandler() queries.GetTransfersGroupedQueryHandler {
	return queries.NewGetTransfersGroupedQueryHandler(c.uowFactory.Create().TransferRepository())
}

func (c *CompositionRoot) CreateTrackingLookupQueryHandler() queries.TrackingLookupQueryHandler {
	return queries.NewTrackingLookupQueryHandler(c.uowFactory.Create().ShipmentRepository(), c.engine)
}

func (c *CompositionRoot) CreateGetScheduleQueryHandler() queries.GetScheduleQueryHandler {
	return queries.NewGetScheduleQueryHandler(c.scheduleStore, c.resolver)
}

// RegisterHTTP mounts the API routes on e.
func (c *CompositionRoot) RegisterHTTP(e *echo.Echo) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateShipment:    c.CreateCreateShipmentCommandHandler(),
		SetShipmentStatus: c.CreateSetShipmentStatusCommandHandler(),
		CreateTransfer:    c.CreateCreateTransferCommandHandler(),
		UpdateSchedule:    c.CreateUpdateScheduleCommandHandler(),
		ShipmentBuckets:   c.CreateGetShipmentsGroupedByBucketQueryHandler(),
		TransferBuckets:   c.CreateGetTransfersGroupedQueryHandler(),
		TrackingLookup:    c.CreateTrackingLookupQueryHandler(),
		GetSchedule:       c.CreateGetScheduleQueryHandler(),
	}, c.resolver.Location(), c.logger)
	server.Register(e, httpadapter.BearerAuth(c.tokens))
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	digest, err := jobs.NewDispatchDigestJob(
		c.CreateGetShipmentsGroupedByBucketQueryHandler(),
		c.CreateGetTransfersGroupedQueryHandler(),
		c.cfg.DigestCron,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(digest), nil
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncTransferUoWFactory func() commands.TransferUoW

func (f FuncTransferUoWFactory) Create() commands.TransferUoW {
	return f()
}
