package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle requires payment status Requested; both statuses end as Paid.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	o, err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ConfirmPayment(h.clock.Now())
	})
	if err != nil {
		return TransitionResult{}, err
	}

	return newTransitionResult(o), nil
}
