package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

type MarkOrderDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewMarkOrderDeliveredCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h MarkOrderDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkOrderDeliveredCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	o, err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.MarkDelivered(h.clock.Now())
	})
	if err != nil {
		return TransitionResult{}, err
	}

	return newTransitionResult(o), nil
}
