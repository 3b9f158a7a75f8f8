package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrDecideOrderCommandIsNotConstructed = errors.New(
	"DecideOrderCommand must be created via NewDecideOrderCommand constructor",
)

// DecideOrderCommand is the vendor's accept or reject answer to a Pending order.
type DecideOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	accept  bool

	guard guard.ConstructorGuard
}

func NewDecideOrderCommand(orderID string, accept bool) (DecideOrderCommand, error) {
	id, err := parseOrderID(orderID)
	if err != nil {
		return DecideOrderCommand{}, err
	}

	return DecideOrderCommand{
		orderID: id,
		accept:  accept,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DecideOrderCommand) Validate() error {
	return c.guard.Validate(ErrDecideOrderCommandIsNotConstructed)
}

func (c DecideOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DecideOrderCommand) Accept() bool {
	return c.accept
}
