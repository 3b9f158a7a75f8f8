package commands

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrRequestPaymentCommandIsNotConstructed = errors.New(
	"RequestPaymentCommand must be created via NewRequestPaymentCommand constructor",
)

// RequestPaymentCommand asks the customer of an Assigned or Delivered order to pay.
// A nil amount means the order total; an empty currency means the business currency.
type RequestPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	amount   *float64
	currency string

	guard guard.ConstructorGuard
}

func NewRequestPaymentCommand(orderID string, amount *float64, currency string) (RequestPaymentCommand, error) {
	if amount != nil && (*amount <= 0 || math.IsNaN(*amount) || math.IsInf(*amount, 0)) {
		return RequestPaymentCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%v is not a positive amount", *amount),
		)
	}

	id, err := parseOrderID(orderID)
	if err != nil {
		return RequestPaymentCommand{}, err
	}

	cmd := RequestPaymentCommand{
		orderID:  id,
		currency: strings.TrimSpace(currency),
		guard:    guard.NewConstructorGuard(),
	}
	if amount != nil {
		a := *amount
		cmd.amount = &a
	}

	return cmd, nil
}

func (c RequestPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRequestPaymentCommandIsNotConstructed)
}

func (c RequestPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the requested amount, if one was given.
func (c RequestPaymentCommand) Amount() (float64, bool) {
	if c.amount == nil {
		return 0, false
	}
	return *c.amount, true
}

func (c RequestPaymentCommand) Currency() string {
	return c.currency
}
