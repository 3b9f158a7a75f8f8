package mcp

import (
	"context"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type PlaceOrderInput struct {
	VendorID      string `json:"vendor_id,omitempty" jsonschema:"vendor receiving the order (defaults to the shop)"`
	CustomerName  string `json:"customer_name" jsonschema:"customer name"`
	CustomerPhone string `json:"customer_contact" jsonschema:"customer phone number"`
	Address       string `json:"address" jsonschema:"delivery address"`
	Items         string `json:"items" jsonschema:"free text such as '1kg surmai, 2 prawns'"`
	Instructions  string `json:"special_instructions,omitempty" jsonschema:"optional notes for the vendor"`
}

type OrderLineInput struct {
	SKU      string  `json:"sku" jsonschema:"menu item sku"`
	Quantity float64 `json:"quantity" jsonschema:"quantity greater than zero"`
}

type OrderCreateInput struct {
	VendorID      string           `json:"vendor_id,omitempty" jsonschema:"vendor receiving the order (defaults to the shop)"`
	CustomerName  string           `json:"customer_name" jsonschema:"customer name"`
	CustomerPhone string           `json:"customer_phone" jsonschema:"customer phone number"`
	Address       string           `json:"address" jsonschema:"delivery address"`
	Items         []OrderLineInput `json:"items" jsonschema:"ordered items, at least one"`
	Instructions  string           `json:"special_instructions,omitempty" jsonschema:"optional notes for the vendor"`
}

type OrderIDInput struct {
	OrderID string `json:"order_id" jsonschema:"order identifier"`
}

type OrdersListInput struct {
	VendorID string `json:"vendor_id,omitempty" jsonschema:"vendor whose orders to list (defaults to the shop)"`
	Status   string `json:"status,omitempty" jsonschema:"optional status filter: pending, accepted, rejected, ready, assigned, delivered or paid"`
}

type OrderDecideInput struct {
	OrderID string `json:"order_id" jsonschema:"order identifier"`
	Accept  bool   `json:"accept" jsonschema:"true to accept the order, false to reject it"`
}

type DeliveryAssignInput struct {
	OrderID string `json:"order_id" jsonschema:"order identifier"`
	AgentID string `json:"agent_id" jsonschema:"delivery agent identifier"`
}

type PaymentRequestInput struct {
	OrderID  string   `json:"order_id" jsonschema:"order identifier"`
	Amount   *float64 `json:"amount,omitempty" jsonschema:"amount to request (defaults to the order total)"`
	Currency string   `json:"currency,omitempty" jsonschema:"ISO 4217 currency code (defaults to the shop currency)"`
}

type AgentOption struct {
	ID   string `json:"id" jsonschema:"agent identifier"`
	Name string `json:"name" jsonschema:"agent name"`
}

type AgentInstruction struct {
	AgentID string `json:"agent_id" jsonschema:"assigned agent"`
	To      string `json:"to" jsonschema:"agent contact number"`
	Message string `json:"message" jsonschema:"pickup instruction for the agent"`
}

type PlacedLine struct {
	SKU       string  `json:"sku" jsonschema:"menu item sku"`
	Name      string  `json:"item" jsonschema:"menu item name"`
	Quantity  float64 `json:"quantity" jsonschema:"ordered quantity"`
	Unit      string  `json:"unit" jsonschema:"unit of the quantity"`
	UnitPrice float64 `json:"unit_price" jsonschema:"price per unit"`
	LineTotal float64 `json:"line_total" jsonschema:"quantity times unit price"`
}

// OrderResult is the outcome of every order-changing tool.
type OrderResult struct {
	OK                   bool              `json:"ok" jsonschema:"whether the operation succeeded"`
	OrderID              string            `json:"order_id,omitempty" jsonschema:"order identifier"`
	Status               string            `json:"status,omitempty" jsonschema:"order status after the operation"`
	PaymentStatus        string            `json:"payment_status,omitempty" jsonschema:"payment status after the operation"`
	Total                float64           `json:"total,omitempty" jsonschema:"order total priced from the menu"`
	Lines                []PlacedLine      `json:"items,omitempty" jsonschema:"lines resolved from the free-text order"`
	VendorMessage        string            `json:"vendor_message,omitempty" jsonschema:"text to send to the vendor"`
	CustomerMessage      string            `json:"customer_message,omitempty" jsonschema:"text to send to the customer"`
	DeliveryAgentOptions []AgentOption     `json:"delivery_agent_options,omitempty" jsonschema:"agents the vendor can assign"`
	AgentInstructions    *AgentInstruction `json:"agent_instructions,omitempty" jsonschema:"message for the assigned agent"`
	Error                string            `json:"error,omitempty" jsonschema:"error code when ok is false"`
	Reason               string            `json:"reason,omitempty" jsonschema:"error detail when ok is false"`
}

type OrderGetResult struct {
	OK     bool               `json:"ok" jsonschema:"whether the order was found"`
	Order  *queries.OrderView `json:"order,omitempty" jsonschema:"the order"`
	Error  string             `json:"error,omitempty" jsonschema:"error code when ok is false"`
	Reason string             `json:"reason,omitempty" jsonschema:"error detail when ok is false"`
}

type OrdersListResult struct {
	OK       bool                `json:"ok" jsonschema:"whether the listing succeeded"`
	VendorID string              `json:"vendor_id,omitempty" jsonschema:"vendor the orders belong to"`
	Count    int                 `json:"count" jsonschema:"number of orders returned"`
	Orders   []queries.OrderView `json:"orders,omitempty" jsonschema:"orders, newest first"`
	Error    string              `json:"error,omitempty" jsonschema:"error code when ok is false"`
	Reason   string              `json:"reason,omitempty" jsonschema:"error detail when ok is false"`
}

func placeOrderTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "place_order",
		Description: "Place an order from free text items such as '1kg surmai, 2 prawns'; items are matched against the menu",
	}
}

func orderCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "order_create",
		Description: "Create an order from structured items (sku and quantity)",
	}
}

func orderGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "order_get",
		Description: "Get an order with its status, payment status and timeline",
	}
}

func ordersListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "orders_list",
		Description: "List a vendor's orders newest first, optionally filtered by status",
	}
}

func orderDecideTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "order_decide",
		Description: "Accept or reject a pending order",
	}
}

func orderReadyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "order_ready",
		Description: "Mark an accepted order ready and list delivery agents to choose from",
	}
}

func deliveryAssignTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delivery_assign",
		Description: "Assign a delivery agent to a ready order",
	}
}

func paymentRequestTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "payment_request",
		Description: "Request payment for an assigned or delivered order",
	}
}

func orderDeliveredTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "order_delivered",
		Description: "Mark an assigned order delivered",
	}
}

func orderPaidTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "order_paid",
		Description: "Confirm payment for an order whose payment was requested",
	}
}

func (s *Server) placeOrderHandler() mcp.ToolHandlerFor[PlaceOrderInput, OrderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PlaceOrderInput) (*mcp.CallToolResult, OrderResult, error) {
		cmd, err := commands.NewPlaceOrderCommand(s.newOrderID(), commands.PlaceOrderInput{
			VendorID:      s.vendorOrDefault(input.VendorID),
			CustomerName:  input.CustomerName,
			CustomerPhone: input.CustomerPhone,
			Address:       input.Address,
			Items:         input.Items,
			Instructions:  input.Instructions,
		})
		if err != nil {
			return nil, s.orderFailure("place_order", err), nil
		}

		placed, err := s.handlers.PlaceOrder.Handle(ctx, cmd)
		if err != nil {
			return nil, s.orderFailure("place_order", err), nil
		}

		result := createdResult(placed.CreateOrderResult)
		for _, line := range placed.Lines {
			result.Lines = append(result.Lines, PlacedLine(line))
		}
		s.logger.Info("order placed", "order_id", result.OrderID, "vendor_id", cmd.VendorID(), "total", result.Total)
		return nil, result, nil
	}
}

func (s *Server) orderCreateHandler() mcp.ToolHandlerFor[OrderCreateInput, OrderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OrderCreateInput) (*mcp.CallToolResult, OrderResult, error) {
		lines := make([]commands.OrderLine, 0, len(input.Items))
		for _, item := range input.Items {
			lines = append(lines, commands.OrderLine{SKU: item.SKU, Quantity: item.Quantity})
		}

		cmd, err := commands.NewCreateOrderCommand(s.newOrderID(), commands.CreateOrderInput{
			VendorID:      s.vendorOrDefault(input.VendorID),
			CustomerName:  input.CustomerName,
			CustomerPhone: input.CustomerPhone,
			Address:       input.Address,
			Items:         lines,
			Instructions:  input.Instructions,
		})
		if err != nil {
			return nil, s.orderFailure("order_create", err), nil
		}

		created, err := s.handlers.CreateOrder.Handle(ctx, cmd)
		if err != nil {
			return nil, s.orderFailure("order_create", err), nil
		}

		result := createdResult(created)
		s.logger.Info("order created", "order_id", result.OrderID, "vendor_id", cmd.VendorID(), "total", result.Total)
		return nil, result, nil
	}
}

func (s *Server) orderGetHandler() mcp.ToolHandlerFor[OrderIDInput, OrderGetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OrderIDInput) (*mcp.CallToolResult, OrderGetResult, error) {
		query, err := queries.NewGetOrderQuery(input.OrderID)
		if err != nil {
			code, reason := failure(s.logger, "order_get", err)
			return nil, OrderGetResult{Error: code, Reason: reason}, nil
		}

		view, err := s.handlers.GetOrder.Handle(ctx, query)
		if err != nil {
			code, reason := failure(s.logger, "order_get", err)
			return nil, OrderGetResult{Error: code, Reason: reason}, nil
		}

		return nil, OrderGetResult{OK: true, Order: &view}, nil
	}
}

func (s *Server) ordersListHandler() mcp.ToolHandlerFor[OrdersListInput, OrdersListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OrdersListInput) (*mcp.CallToolResult, OrdersListResult, error) {
		vendorID := s.vendorOrDefault(input.VendorID)
		query, err := queries.NewListVendorOrdersQuery(vendorID, input.Status)
		if err != nil {
			code, reason := failure(s.logger, "orders_list", err)
			return nil, OrdersListResult{Error: code, Reason: reason}, nil
		}

		views, err := s.handlers.ListVendorOrders.Handle(ctx, query)
		if err != nil {
			code, reason := failure(s.logger, "orders_list", err)
			return nil, OrdersListResult{Error: code, Reason: reason}, nil
		}

		return nil, OrdersListResult{OK: true, VendorID: vendorID, Count: len(views), Orders: views}, nil
	}
}

func (s *Server) orderDecideHandler() mcp.ToolHandlerFor[OrderDecideInput, OrderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OrderDecideInput) (*mcp.CallToolResult, OrderResult, error) {
		cmd, err := commands.NewDecideOrderCommand(input.OrderID, input.Accept)
		if err != nil {
			return nil, s.orderFailure("order_decide", err), nil
		}
		res, err := s.handlers.DecideOrder.Handle(ctx, cmd)
		return nil, s.transitionOutcome("order_decide", res, err), nil
	}
}

func (s *Server) orderReadyHandler() mcp.ToolHandlerFor[OrderIDInput, OrderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OrderIDInput) (*mcp.CallToolResult, OrderResult, error) {
		cmd, err := commands.NewMarkOrderReadyCommand(input.OrderID)
		if err != nil {
			return nil, s.orderFailure("order_ready", err), nil
		}
		res, err := s.handlers.MarkOrderReady.Handle(ctx, cmd)
		return nil, s.transitionOutcome("order_ready", res, err), nil
	}
}

func (s *Server) deliveryAssignHandler() mcp.ToolHandlerFor[DeliveryAssignInput, OrderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeliveryAssignInput) (*mcp.CallToolResult, OrderResult, error) {
		cmd, err := commands.NewAssignAgentCommand(input.OrderID, input.AgentID)
		if err != nil {
			return nil, s.orderFailure("delivery_assign", err), nil
		}
		res, err := s.handlers.AssignAgent.Handle(ctx, cmd)
		return nil, s.transitionOutcome("delivery_assign", res, err), nil
	}
}

func (s *Server) paymentRequestHandler() mcp.ToolHandlerFor[PaymentRequestInput, OrderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PaymentRequestInput) (*mcp.CallToolResult, OrderResult, error) {
		cmd, err := commands.NewRequestPaymentCommand(input.OrderID, input.Amount, input.Currency)
		if err != nil {
			return nil, s.orderFailure("payment_request", err), nil
		}
		res, err := s.handlers.RequestPayment.Handle(ctx, cmd)
		return nil, s.transitionOutcome("payment_request", res, err), nil
	}
}

func (s *Server) orderDeliveredHandler() mcp.ToolHandlerFor[OrderIDInput, OrderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OrderIDInput) (*mcp.CallToolResult, OrderResult, error) {
		cmd, err := commands.NewMarkOrderDeliveredCommand(input.OrderID)
		if err != nil {
			return nil, s.orderFailure("order_delivered", err), nil
		}
		res, err := s.handlers.MarkOrderDelivered.Handle(ctx, cmd)
		return nil, s.transitionOutcome("order_delivered", res, err), nil
	}
}

func (s *Server) orderPaidHandler() mcp.ToolHandlerFor[OrderIDInput, OrderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OrderIDInput) (*mcp.CallToolResult, OrderResult, error) {
		cmd, err := commands.NewConfirmPaymentCommand(input.OrderID)
		if err != nil {
			return nil, s.orderFailure("order_paid", err), nil
		}
		res, err := s.handlers.ConfirmPayment.Handle(ctx, cmd)
		return nil, s.transitionOutcome("order_paid", res, err), nil
	}
}

func (s *Server) orderFailure(tool string, err error) OrderResult {
	code, reason := failure(s.logger, tool, err)
	return OrderResult{Error: code, Reason: reason}
}

func (s *Server) transitionOutcome(tool string, res commands.TransitionResult, err error) OrderResult {
	if err != nil {
		return s.orderFailure(tool, err)
	}

	result := OrderResult{
		OK:              true,
		OrderID:         res.OrderID.String(),
		Status:          res.Status.String(),
		PaymentStatus:   res.PaymentStatus.String(),
		VendorMessage:   res.VendorMessage,
		CustomerMessage: res.CustomerMessage,
	}
	for _, opt := range res.AgentOptions {
		result.DeliveryAgentOptions = append(result.DeliveryAgentOptions, AgentOption{ID: opt.ID, Name: opt.Name})
	}
	if ins := res.AgentInstruction; ins != nil {
		result.AgentInstructions = &AgentInstruction{AgentID: ins.AgentID, To: ins.Contact, Message: ins.Message}
	}

	s.logger.Info("order transitioned", "tool", tool, "order_id", result.OrderID, "status", result.Status)
	return result
}

func createdResult(created commands.CreateOrderResult) OrderResult {
	return OrderResult{
		OK:            true,
		OrderID:       created.OrderID.String(),
		Status:        created.Status.String(),
		PaymentStatus: created.PaymentStatus.String(),
		Total:         created.Total,
	}
}
