package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
	"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
)

// MarkOrderDeliveredCommand moves an Assigned order to Delivered.
type MarkOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderDeliveredCommand(orderID string) (MarkOrderDeliveredCommand, error) {
	id, err := parseOrderID(orderID)
	if err != nil {
		return MarkOrderDeliveredCommand{}, err
	}

	return MarkOrderDeliveredCommand{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

func (c MarkOrderDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}
