package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// CreateOrderResult identifies the order that was created and its priced total.
type CreateOrderResult struct {
	OrderID       kernel.UUID
	Status        order.Status
	PaymentStatus order.PaymentStatus
	Total         float64
}

// CreateOrderCommandHandler prices the requested items against the catalog
// and stores a new Pending order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, kernel.SystemClock{})
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// result.OrderID is now Pending and awaits the vendor's decision
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.Catalog
	clock      kernel.Clock
	pricer     services.OrderPricer
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.Catalog,
	clock kernel.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		clock:      clock,
		pricer:     services.NewOrderPricer(),
	}
}

// Handle rejects unknown or unavailable SKUs, then persists the order in its
// own unit of work.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	menu, err := h.catalog.ListAll(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	total, err := h.pricer.Price(cmd.Items(), menu)
	if err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.VendorID(),
		cmd.Customer(),
		cmd.Address(),
		cmd.Items(),
		h.clock.Now(),
		order.WithInstructions(cmd.Instructions()),
		order.WithTotal(total),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:       o.ID(),
		Status:        o.Status(),
		PaymentStatus: o.PaymentStatus(),
		Total:         o.Total(),
	}, nil
}
