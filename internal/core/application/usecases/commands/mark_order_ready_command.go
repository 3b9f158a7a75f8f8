package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand moves an Accepted order to Ready.
type MarkOrderReadyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderReadyCommand(orderID string) (MarkOrderReadyCommand, error) {
	id, err := parseOrderID(orderID)
	if err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return MarkOrderReadyCommand{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

func (c MarkOrderReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}
