package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
	"orderdesk/internal/pkg/validation"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderInput is an order whose items arrive as free text, e.g. "1kg surmai, 2 prawns".
type PlaceOrderInput struct {
	VendorID      string `json:"vendor_id" validate:"required"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerPhone string `json:"customer_contact" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Items         string `json:"items" validate:"required"`
	Instructions  string `json:"special_instructions"`
}

// PlaceOrderCommand carries a validated free-text order.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	input   PlaceOrderInput

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(orderID kernel.UUID, in PlaceOrderInput) (PlaceOrderCommand, error) {
	in = PlaceOrderInput{
		VendorID:      strings.TrimSpace(in.VendorID),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Address:       strings.TrimSpace(in.Address),
		Items:         strings.TrimSpace(in.Items),
		Instructions:  strings.TrimSpace(in.Instructions),
	}

	if err := errors.Join(orderID.Validate(), validation.Struct(validate, in)); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		orderID: orderID,
		input:   in,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) VendorID() string {
	return c.input.VendorID
}

func (c PlaceOrderCommand) ItemsText() string {
	return c.input.Items
}

// createInput converts the command into a structured create request with lines.
func (c PlaceOrderCommand) createInput(lines []OrderLine) CreateOrderInput {
	return CreateOrderInput{
		VendorID:      c.input.VendorID,
		CustomerName:  c.input.CustomerName,
		CustomerPhone: c.input.CustomerPhone,
		Address:       c.input.Address,
		Items:         lines,
		Instructions:  c.input.Instructions,
	}
}
