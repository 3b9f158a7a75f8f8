package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
	"orderdesk/internal/pkg/validation"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one structured item of a create request.
type OrderLine struct {
	SKU      string  `json:"sku" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
}

// CreateOrderInput is the raw request to create an order.
type CreateOrderInput struct {
	VendorID      string      `json:"vendor_id" validate:"required"`
	CustomerName  string      `json:"customer_name" validate:"required"`
	CustomerPhone string      `json:"customer_phone" validate:"required"`
	Address       string      `json:"address" validate:"required"`
	Items         []OrderLine `json:"items" validate:"required,min=1,dive"`
	Instructions  string      `json:"special_instructions"`
}

// CreateOrderCommand represents a validated request to create a Pending order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), CreateOrderInput{
//	    VendorID:      "vendor_1",
//	    CustomerName:  "Neha",
//	    CustomerPhone: "919876500001",
//	    Address:       "221B Baker St",
//	    Items:         []OrderLine{{SKU: "chai", Quantity: 2}},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	vendorID     string
	customer     order.Customer
	address      string
	items        []order.Item
	instructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand trims and validates the input and builds the domain
// values the handler needs. Every field problem is reported at once.
func NewCreateOrderCommand(orderID kernel.UUID, in CreateOrderInput) (CreateOrderCommand, error) {
	in = in.normalized()
	if err := errors.Join(orderID.Validate(), validation.Struct(validate, in)); err != nil {
		return CreateOrderCommand{}, err
	}

	customer, err := order.NewCustomer(in.CustomerName, in.CustomerPhone)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	items := make([]order.Item, 0, len(in.Items))
	for _, line := range in.Items {
		item, err := order.NewItem(line.SKU, line.Quantity)
		if err != nil {
			return CreateOrderCommand{}, err
		}
		items = append(items, item)
	}

	return CreateOrderCommand{
		orderID:      orderID,
		vendorID:     in.VendorID,
		customer:     customer,
		address:      in.Address,
		items:        items,
		instructions: in.Instructions,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) VendorID() string {
	return c.vendorID
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateOrderCommand) Address() string {
	return c.address
}

// Items returns a copy of the requested lines.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c CreateOrderCommand) Instructions() string {
	return c.instructions
}

func (in CreateOrderInput) normalized() CreateOrderInput {
	out := in
	out.VendorID = strings.TrimSpace(in.VendorID)
	out.CustomerName = strings.TrimSpace(in.CustomerName)
	out.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	out.Address = strings.TrimSpace(in.Address)
	out.Instructions = strings.TrimSpace(in.Instructions)
	if in.Items != nil {
		out.Items = make([]OrderLine, len(in.Items))
		for i, line := range in.Items {
			out.Items[i] = OrderLine{SKU: strings.TrimSpace(line.SKU), Quantity: line.Quantity}
		}
	}
	return out
}
