// Package mcp exposes the order desk as Model Context Protocol tools.
//
// Every tool delegates to a command or query handler. Order tools never fail
// at the protocol level for domain errors: they return a result with ok=false,
// a stable error code and a human readable reason, so the calling agent can
// relay the outcome to the vendor or customer.
package mcp

import (
	"context"
	"log/slog"
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "orderdesk"
	serverVersion = "1.0.0"
)

// Handlers groups the use cases reachable through MCP tools.
type Handlers struct {
	PlaceOrder         commands.PlaceOrderCommandHandler
	CreateOrder        commands.CreateOrderCommandHandler
	DecideOrder        commands.DecideOrderCommandHandler
	MarkOrderReady     commands.MarkOrderReadyCommandHandler
	AssignAgent        commands.AssignAgentCommandHandler
	MarkOrderDelivered commands.MarkOrderDeliveredCommandHandler
	RequestPayment     commands.RequestPaymentCommandHandler
	ConfirmPayment     commands.ConfirmPaymentCommandHandler

	GetOrder           queries.GetOrderQueryHandler
	ListVendorOrders   queries.ListVendorOrdersQueryHandler
	GetMenu            queries.GetMenuQueryHandler
	GetBusinessProfile queries.GetBusinessProfileQueryHandler
}

// Options configure tool behaviour that does not belong to a use case.
type Options struct {
	// CallerIdentity is returned by the validate tool.
	CallerIdentity string
	// DefaultVendorID is used when a tool call omits vendor_id.
	DefaultVendorID string
}

// Server owns the MCP server and the tool handlers registered on it.
type Server struct {
	handlers   Handlers
	opts       Options
	logger     *slog.Logger
	newOrderID func() kernel.UUID

	server *mcp.Server
}

// NewServer creates the MCP server and registers every tool.
func NewServer(handlers Handlers, opts Options, logger *slog.Logger) *Server {
	s := &Server{
		handlers:   handlers,
		opts:       opts,
		logger:     logger.With("component", "mcp"),
		newOrderID: kernel.NewUUID,
		server:     mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{}),
	}
	s.registerTools()
	return s
}

// MCP returns the underlying server, mainly for in-memory transports in tests.
func (s *Server) MCP() *mcp.Server {
	return s.server
}

// RunStdio serves a single client over stdin/stdout until ctx is done or the
// client disconnects.
func (s *Server) RunStdio(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler serves the streamable HTTP transport. Authentication is left to
// the caller.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, validateTool(), s.validateHandler())
	mcp.AddTool(s.server, getMenuTool(), s.getMenuHandler())
	mcp.AddTool(s.server, getLocationTool(), s.getLocationHandler())
	mcp.AddTool(s.server, showHelpTool(), s.showHelpHandler())

	mcp.AddTool(s.server, placeOrderTool(), s.placeOrderHandler())
	mcp.AddTool(s.server, orderCreateTool(), s.orderCreateHandler())
	mcp.AddTool(s.server, orderGetTool(), s.orderGetHandler())
	mcp.AddTool(s.server, ordersListTool(), s.ordersListHandler())
	mcp.AddTool(s.server, orderDecideTool(), s.orderDecideHandler())
	mcp.AddTool(s.server, orderReadyTool(), s.orderReadyHandler())
	mcp.AddTool(s.server, deliveryAssignTool(), s.deliveryAssignHandler())
	mcp.AddTool(s.server, paymentRequestTool(), s.paymentRequestHandler())
	mcp.AddTool(s.server, orderDeliveredTool(), s.orderDeliveredHandler())
	mcp.AddTool(s.server, orderPaidTool(), s.orderPaidHandler())
}

func (s *Server) vendorOrDefault(vendorID string) string {
	if vendorID == "" {
		return s.opts.DefaultVendorID
	}
	return vendorID
}
