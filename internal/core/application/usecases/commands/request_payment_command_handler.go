package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
)

// RequestPaymentCommandHandler records a payment request on an order. The
// order status does not change; payment status becomes Requested.
type RequestPaymentCommandHandler struct {
	uowFactory      OrderUoWFactory
	defaultCurrency string
	messages        services.MessageComposer
}

// NewRequestPaymentCommandHandler creates the handler. defaultCurrency is the
// ISO 4217 code used when a command carries none.
func NewRequestPaymentCommandHandler(uowFactory OrderUoWFactory, defaultCurrency string) RequestPaymentCommandHandler {
	return RequestPaymentCommandHandler{
		uowFactory:      uowFactory,
		defaultCurrency: defaultCurrency,
		messages:        services.NewMessageComposer(),
	}
}

func (h RequestPaymentCommandHandler) Handle(ctx context.Context, cmd RequestPaymentCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	currency := cmd.Currency()
	if currency == "" {
		currency = h.defaultCurrency
	}

	var request order.PaymentRequest
	o, err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		if err := o.Status().ValidatePaymentRequest(); err != nil {
			return err
		}

		amount, ok := cmd.Amount()
		if !ok {
			amount = o.Total()
		}

		pr, err := order.NewPaymentRequest(amount, currency)
		if err != nil {
			return err
		}

		if err = o.RequestPayment(pr); err != nil {
			return err
		}
		request = pr
		return nil
	})
	if err != nil {
		return TransitionResult{}, err
	}

	result := newTransitionResult(o)
	result.VendorMessage = h.messages.VendorPaymentRequested(o, request)

	return result, nil
}
