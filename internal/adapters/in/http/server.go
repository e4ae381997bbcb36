// Package http exposes the REST and websocket surface of the shipping service.
// It coordinates between HTTP handlers and application use cases; all business
// rules live behind the command and query handlers.
package http

import (
	"net/http"
	"strconv"

	"shipping/internal/broadcast"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/pkg/auth"
	"shipping/internal/queue"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to the application's command and query handlers.
type Server struct {
	// Command handlers
	registerUserHandler   commands.RegisterUserCommandHandler
	loginUserHandler      commands.LoginUserCommandHandler
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateStatusHandler   commands.UpdateShipmentStatusCommandHandler
	assignRouteHandler    commands.AssignRouteCommandHandler

	// Query handlers
	getShipmentsHandler         queries.GetShipmentsQueryHandler
	getUserShipmentsHandler     queries.GetUserShipmentsQueryHandler
	getShipmentHistoryHandler   queries.GetShipmentHistoryQueryHandler
	getAvailableCarriersHandler queries.GetAvailableCarriersQueryHandler
	getPlannedRoutesHandler     queries.GetPlannedRoutesQueryHandler

	dispatcher *queue.Dispatcher
	hub        *broadcast.Hub
	tokenCfg   auth.Config
}

// NewServer creates an HTTP server with the required handlers and runtime components.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	loginUserHandler commands.LoginUserCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateStatusHandler commands.UpdateShipmentStatusCommandHandler,
	assignRouteHandler commands.AssignRouteCommandHandler,
	getShipmentsHandler queries.GetShipmentsQueryHandler,
	getUserShipmentsHandler queries.GetUserShipmentsQueryHandler,
	getShipmentHistoryHandler queries.GetShipmentHistoryQueryHandler,
	getAvailableCarriersHandler queries.GetAvailableCarriersQueryHandler,
	getPlannedRoutesHandler queries.GetPlannedRoutesQueryHandler,
	dispatcher *queue.Dispatcher,
	hub *broadcast.Hub,
	tokenCfg auth.Config,
) *Server {
	return &Server{
		registerUserHandler:         registerUserHandler,
		loginUserHandler:            loginUserHandler,
		createShipmentHandler:       createShipmentHandler,
		updateStatusHandler:         updateStatusHandler,
		assignRouteHandler:          assignRouteHandler,
		getShipmentsHandler:         getShipmentsHandler,
		getUserShipmentsHandler:     getUserShipmentsHandler,
		getShipmentHistoryHandler:   getShipmentHistoryHandler,
		getAvailableCarriersHandler: getAvailableCarriersHandler,
		getPlannedRoutesHandler:     getPlannedRoutesHandler,
		dispatcher:                  dispatcher,
		hub:                         hub,
		tokenCfg:                    tokenCfg,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
// Mutating shipment state, inspecting queues, and reading the allocation
// catalog (routes, carriers) require the admin role; reading one's own
// shipments only requires a valid token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/ws", s.ServeWS)

	api := e.Group("/api/v1")
	api.POST("/users", s.RegisterUser)
	api.POST("/login", s.Login)

	authed := api.Group("", requireAuth(s.tokenCfg))
	authed.POST("/shipments", s.CreateShipment)
	authed.GET("/shipments/me", s.GetMyShipments)
	authed.GET("/shipments/:id/history", s.GetShipmentHistory)

	admin := authed.Group("", requireAdmin)
	admin.GET("/shipments", s.GetShipments)
	admin.GET("/routes", s.GetPlannedRoutes)
	admin.GET("/carriers", s.GetAvailableCarriers)
	admin.PATCH("/shipments/:id/status", s.UpdateShipmentStatus)
	admin.POST("/assignments", s.CreateAssignment)
	admin.GET("/queues/:name", s.GetQueueStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterUser handles POST /api/v1/users - creates a new account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req registerUserRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	account, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUserResponse(account))
}

// Login handles POST /api/v1/login - exchanges credentials for a JWT.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewLoginUserCommand(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.loginUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// CreateShipment handles POST /api/v1/shipments - registers a shipment for
// the authenticated user.
func (s *Server) CreateShipment(ctx echo.Context) error {
	claims := currentClaims(ctx)

	var req createShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(
		claims.UserID,
		req.Street, req.Detail, req.City, req.Region, req.PostalCode, req.Country,
		req.WeightKg, req.Length, req.Width, req.Height,
		req.ProductType,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toShipmentResponse(created))
}

// GetShipments handles GET /api/v1/shipments - lists shipments, optionally
// filtered by ?status=<code>.
func (s *Server) GetShipments(ctx echo.Context) error {
	var (
		query queries.GetShipmentsQuery
		err   error
	)

	if raw := ctx.QueryParam("status"); raw != "" {
		status, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{
				Code:    http.StatusBadRequest,
				Message: "status must be an integer",
			})
		}
		query, err = queries.NewGetShipmentsQueryWithStatus(status)
		if err != nil {
			return respondError(ctx, err)
		}
	} else {
		query = queries.NewGetShipmentsQuery()
	}

	shipments, err := s.getShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipments)
}

// GetMyShipments handles GET /api/v1/shipments/me - lists the caller's shipments.
func (s *Server) GetMyShipments(ctx echo.Context) error {
	claims := currentClaims(ctx)

	query, err := queries.NewGetUserShipmentsQuery(claims.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	shipments, err := s.getUserShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipments)
}

// GetShipmentHistory handles GET /api/v1/shipments/:id/history.
func (s *Server) GetShipmentHistory(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipmentHistoryQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	history, err := s.getShipmentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, history)
}

// UpdateShipmentStatus handles PATCH /api/v1/shipments/:id/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(id, req.Status, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(updated))
}

// CreateAssignment handles POST /api/v1/assignments - runs the allocation workflow.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	var req createAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAssignRouteCommand(req.ShipmentID, req.RouteID, req.CarrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.assignRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAssignmentResponse(result))
}

// GetPlannedRoutes handles GET /api/v1/routes.
func (s *Server) GetPlannedRoutes(ctx echo.Context) error {
	routes, err := s.getPlannedRoutesHandler.Handle(ctx.Request().Context(), queries.NewGetPlannedRoutesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routes)
}

// GetAvailableCarriers handles GET /api/v1/carriers.
func (s *Server) GetAvailableCarriers(ctx echo.Context) error {
	carriers, err := s.getAvailableCarriersHandler.Handle(ctx.Request().Context(), queries.NewGetAvailableCarriersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, carriers)
}

// GetQueueStatus handles GET /api/v1/queues/:name - reports dispatcher
// pending/failed/processed counts.
func (s *Server) GetQueueStatus(ctx echo.Context) error {
	status, err := s.dispatcher.Status(ctx.Param("name"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, status)
}

// pathID parses the :id path parameter.
func pathID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}
