// Package cmd wires configuration and the object graph of the shipping service.
package cmd

import (
	"log/slog"

	"shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/email"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/broadcast"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/jobs"
	"shipping/internal/notifications"
	"shipping/internal/pkg/auth"
	"shipping/internal/queue"

	"gorm.io/gorm"
)

// CompositionRoot builds and holds the long-lived components of the service
// and produces request-scoped handlers on demand.
type CompositionRoot struct {
	gormDB     *gorm.DB
	logger     *slog.Logger
	dispatcher *queue.Dispatcher
	hub        *broadcast.Hub
	tokenCfg   auth.Config
}

// NewCompositionRoot constructs the shared runtime components and registers
// the email handler on its queue.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	dispatcher := queue.NewDispatcher(logger)
	hub := broadcast.NewHub(logger)

	sender := email.NewLogEmailSender(logger)
	dispatcher.RegisterHandler(notifications.QueueEmails, notifications.NewEmailHandler(sender, logger))

	return CompositionRoot{
		gormDB:     gormDB,
		logger:     logger,
		dispatcher: dispatcher,
		hub:        hub,
		tokenCfg: auth.Config{
			Secret:            config.JWTSecret,
			Issuer:            config.JWTIssuer,
			ExpirationMinutes: config.JWTExpirationMinutes,
		},
	}
}

// Dispatcher returns the shared job dispatcher.
func (c *CompositionRoot) Dispatcher() *queue.Dispatcher {
	return c.dispatcher
}

// Hub returns the shared broadcast hub.
func (c *CompositionRoot) Hub() *broadcast.Hub {
	return c.hub
}

// CreateJobManager builds the scheduled job coordinator.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.dispatcher, c.logger)
}

// CreateHTTPServer builds the HTTP server with all handlers wired.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateRegisterUserCommandHandler(),
		c.CreateLoginUserCommandHandler(),
		c.CreateCreateShipmentCommandHandler(),
		c.CreateUpdateShipmentStatusCommandHandler(),
		c.CreateAssignRouteCommandHandler(),
		c.CreateGetShipmentsQueryHandler(),
		c.CreateGetUserShipmentsQueryHandler(),
		c.CreateGetShipmentHistoryQueryHandler(),
		c.CreateGetAvailableCarriersQueryHandler(),
		c.CreateGetPlannedRoutesQueryHandler(),
		c.dispatcher,
		c.hub,
		c.tokenCfg,
	)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(postgres.NewUserUoWFactory(c.gormDB))
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() commands.LoginUserCommandHandler {
	return commands.NewLoginUserCommandHandler(postgres.NewUserUoWFactory(c.gormDB), c.tokenCfg)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(postgres.NewShipmentUoWFactory(c.gormDB), c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(postgres.NewShipmentUoWFactory(c.gormDB), c.hub, c.dispatcher)
}

func (c *CompositionRoot) CreateAssignRouteCommandHandler() commands.AssignRouteCommandHandler {
	return commands.NewAssignRouteCommandHandler(postgres.NewAssignUoWFactory(c.gormDB), c.hub)
}

func (c *CompositionRoot) CreateGetShipmentsQueryHandler() queries.GetShipmentsQueryHandler {
	return queries.NewGetShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserShipmentsQueryHandler() queries.GetUserShipmentsQueryHandler {
	return queries.NewGetUserShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentHistoryQueryHandler() queries.GetShipmentHistoryQueryHandler {
	return queries.NewGetShipmentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableCarriersQueryHandler() queries.GetAvailableCarriersQueryHandler {
	return queries.NewGetAvailableCarriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPlannedRoutesQueryHandler() queries.GetPlannedRoutesQueryHandler {
	return queries.NewGetPlannedRoutesQueryHandler(c.gormDB)
}
