package http

import (
	"errors"
	"log/slog"
	"net/http"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body of every failed REST response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server implements the read-only REST endpoints.
// It coordinates between HTTP handlers and application queries.
type Server struct {
	getMenuHandler          queries.GetMenuQueryHandler
	listVendorOrdersHandler queries.ListVendorOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	listAgentsHandler       queries.ListAgentsQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	getMenuHandler queries.GetMenuQueryHandler,
	listVendorOrdersHandler queries.ListVendorOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listAgentsHandler queries.ListAgentsQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		getMenuHandler:          getMenuHandler,
		listVendorOrdersHandler: listVendorOrdersHandler,
		getOrderHandler:         getOrderHandler,
		listAgentsHandler:       listAgentsHandler,
		logger:                  logger.With("component", "http"),
	}
}

// GetMenu handles GET /api/v1/menu?search= - retrieves the menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery(ctx.QueryParam("search")))
	if err != nil {
		return s.fail(ctx, "Failed to retrieve menu", err)
	}

	return ctx.JSON(http.StatusOK, menu)
}

// ListVendorOrders handles GET /api/v1/vendors/:vendor_id/orders?status= - lists a vendor's orders.
func (s *Server) ListVendorOrders(ctx echo.Context) error {
	query, err := queries.NewListVendorOrdersQuery(ctx.Param("vendor_id"), ctx.QueryParam("status"))
	if err != nil {
		return s.fail(ctx, "Invalid order filter", err)
	}

	orders, err := s.listVendorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve orders", err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:order_id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("order_id"))
	if err != nil {
		return s.fail(ctx, "Order not found", err)
	}

	order, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve order", err)
	}

	return ctx.JSON(http.StatusOK, order)
}

// ListAgents handles GET /api/v1/agents - lists delivery agents.
func (s *Server) ListAgents(ctx echo.Context) error {
	agents, err := s.listAgentsHandler.Handle(ctx.Request().Context(), queries.NewListAgentsQuery())
	if err != nil {
		return s.fail(ctx, "Failed to retrieve agents", err)
	}

	return ctx.JSON(http.StatusOK, agents)
}

func (s *Server) fail(ctx echo.Context, message string, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.Error(message, "path", ctx.Path(), "error", err)
		return ctx.JSON(code, Error{Code: code, Message: message})
	}

	return ctx.JSON(code, Error{Code: code, Message: message + ": " + err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
