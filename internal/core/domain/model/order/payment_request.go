package order

import (
	"fmt"
	"math"
	"strings"

	"orderdesk/internal/pkg/errs"

	"golang.org/x/text/currency"
)

// PaymentRequest records the amount asked of the customer.
type PaymentRequest struct {
	amount   float64
	currency currency.Unit
}

// NewPaymentRequest validates a positive amount and an ISO 4217 currency code.
func NewPaymentRequest(amount float64, currencyCode string) (PaymentRequest, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return PaymentRequest{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a positive amount", amount))
	}

	unit, err := currency.ParseISO(strings.TrimSpace(currencyCode))
	if err != nil {
		return PaymentRequest{}, errs.NewValueIsInvalidErrorWithCause("currency", err)
	}

	return PaymentRequest{amount: amount, currency: unit}, nil
}

func (p PaymentRequest) Amount() float64 {
	return p.amount
}

// Currency returns the ISO 4217 code, e.g. "INR".
func (p PaymentRequest) Currency() string {
	return p.currency.String()
}

// String renders the request as "INR 250.00".
func (p PaymentRequest) String() string {
	return fmt.Sprintf("%s %.2f", p.Currency(), p.amount)
}
