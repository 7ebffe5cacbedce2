// Package http exposes the reporting pipeline over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"salesreport/internal/core/application/usecases/commands"
	"salesreport/internal/core/application/usecases/queries"
	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/core/domain/model/order"
	"salesreport/internal/core/domain/model/user"
	"salesreport/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const defaultDispatchLogLimit = 100

// Server handles HTTP requests for the reporting service.
type Server struct {
	// Command handlers
	addOrderHandler         commands.AddOrderCommandHandler
	addUserHandler          commands.AddUserCommandHandler
	sendWeeklyReportHandler commands.SendWeeklyReportCommandHandler

	// Query handlers
	getDispatchLogHandler queries.GetDispatchLogQueryHandler
	getSalesTotalHandler  queries.GetSalesTotalQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addOrderHandler commands.AddOrderCommandHandler,
	addUserHandler commands.AddUserCommandHandler,
	sendWeeklyReportHandler commands.SendWeeklyReportCommandHandler,
	getDispatchLogHandler queries.GetDispatchLogQueryHandler,
	getSalesTotalHandler queries.GetSalesTotalQueryHandler,
) *Server {
	return &Server{
		addOrderHandler:         addOrderHandler,
		addUserHandler:          addUserHandler,
		sendWeeklyReportHandler: sendWeeklyReportHandler,
		getDispatchLogHandler:   getDispatchLogHandler,
		getSalesTotalHandler:    getSalesTotalHandler,
	}
}

// RegisterRoutes binds all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.AddOrder)
	v1.POST("/users", s.AddUser)
	v1.POST("/reports/weekly", s.RunWeeklyReport)
	v1.GET("/reports/dispatch-log", s.GetDispatchLog)
	v1.GET("/reports/sales-total", s.GetSalesTotal)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AddOrder handles POST /api/v1/orders - registers a completed sales order.
func (s *Server) AddOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := parseOrBuildID(body.ID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	items := make([]order.LineItem, 0, len(body.Items))
	for _, line := range body.Items {
		unitPrice, priceErr := decimal.NewFromString(line.UnitPrice)
		if priceErr != nil {
			return badRequest(ctx, "Invalid unit price: "+line.UnitPrice)
		}

		item, itemErr := order.NewLineItem(unitPrice, line.Quantity)
		if itemErr != nil {
			return badRequest(ctx, "Invalid line item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewAddOrderCommand(orderID, body.OrderedAt, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.addOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to register order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddUser handles POST /api/v1/users - registers a directory member.
func (s *Server) AddUser(ctx echo.Context) error {
	var body NewUser
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := parseOrBuildID(body.ID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	role, err := user.RoleFromString(body.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+body.Role)
	}

	cmd, err := commands.NewAddUserCommand(userID, role, body.FirstName, body.LastName, body.Email, body.IsApprover)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	if handleErr := s.addUserHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to register user",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// RunWeeklyReport handles POST /api/v1/reports/weekly - runs the reporting
// pipeline immediately instead of waiting for the schedule.
func (s *Server) RunWeeklyReport(ctx echo.Context) error {
	var body RunReport
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	asOf := time.Now().UTC()
	if body.AsOf != nil {
		asOf = body.AsOf.UTC()
	}

	cmd, err := commands.NewSendWeeklyReportCommand(asOf)
	if err != nil {
		return badRequest(ctx, "Invalid run moment: "+err.Error())
	}

	outcome, err := s.sendWeeklyReportHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrDeliveryFailed):
			status = http.StatusBadGateway
		case errors.Is(err, services.ErrDirectoryInconsistent):
			status = http.StatusConflict
		}
		return ctx.JSON(status, Error{
			Code:    status,
			Message: "Report run failed: " + err.Error(),
		})
	}

	events := outcome.Events()
	response := RunOutcome{
		Status: outcome.Status().String(),
		Events: make([]DispatchEvent, 0, len(events)),
	}
	for _, event := range events {
		response.Events = append(response.Events, DispatchEvent{
			RecipientName:    event.RecipientName,
			RecipientAddress: event.RecipientAddress,
			SentAt:           event.SentAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDispatchLog handles GET /api/v1/reports/dispatch-log - retrieves the
// most recent recorded sends.
func (s *Server) GetDispatchLog(ctx echo.Context) error {
	limit := defaultDispatchLogLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit: "+raw)
		}
		limit = parsed
	}

	query, err := queries.NewGetDispatchLogQuery(limit)
	if err != nil {
		return badRequest(ctx, "Invalid limit: "+err.Error())
	}

	entries, err := s.getDispatchLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve dispatch log",
		})
	}

	response := make([]DispatchEvent, len(entries))
	for i, entry := range entries {
		response[i] = DispatchEvent{
			RecipientName:    entry.RecipientName,
			RecipientAddress: entry.RecipientAddress,
			SentAt:           entry.SentAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSalesTotal handles GET /api/v1/reports/sales-total - computes the
// sales total over an arbitrary window without dispatching anything.
func (s *Server) GetSalesTotal(ctx echo.Context) error {
	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from: expected RFC3339 timestamp")
	}

	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to: expected RFC3339 timestamp")
	}

	query, err := queries.NewGetSalesTotalQuery(from, to)
	if err != nil {
		return badRequest(ctx, "Invalid window: "+err.Error())
	}

	total, err := s.getSalesTotalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute sales total",
		})
	}

	return ctx.JSON(http.StatusOK, SalesTotal{
		TotalAmount: total.TotalAmount.String(),
		OrderCount:  total.OrderCount,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseOrBuildID(raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.NewUUID(), nil
	}
	return kernel.UUIDFromString(raw)
}
