package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
)

// DecideOrderCommandHandler accepts or rejects a Pending order and produces the
// vendor and customer notifications.
type DecideOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	messages   services.MessageComposer
}

func NewDecideOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) DecideOrderCommandHandler {
	return DecideOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		messages:   services.NewMessageComposer(),
	}
}

func (h DecideOrderCommandHandler) Handle(ctx context.Context, cmd DecideOrderCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	o, err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Decide(cmd.Accept(), h.clock.Now())
	})
	if err != nil {
		return TransitionResult{}, err
	}

	result := newTransitionResult(o)
	if cmd.Accept() {
		result.VendorMessage = h.messages.VendorAccepted(o)
		result.CustomerMessage = h.messages.CustomerAccepted(o)
	} else {
		result.VendorMessage = h.messages.VendorRejected(o)
		result.CustomerMessage = h.messages.CustomerRejected(o)
	}

	return result, nil
}
