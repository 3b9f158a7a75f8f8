package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// PaymentStatus tracks the payment sub-state that runs alongside Status.
//
//	Unrequested ──request──> Requested ──settle──> Paid
//
// A request may be repeated while Requested; it only re-records the amount.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentUnrequested
	PaymentRequested
	PaymentPaid
)

func (p PaymentStatus) String() string {
	switch p {
	case PaymentUnrequested:
		return "unrequested"
	case PaymentRequested:
		return "requested"
	case PaymentPaid:
		return "paid"
	case PaymentUnknown:
	}
	return "unknown"
}

// Validate rejects PaymentUnknown and out-of-range values.
func (p PaymentStatus) Validate() error {
	if p <= PaymentUnknown || p > PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// Request moves to Requested. Only a settled payment refuses.
func (p PaymentStatus) Request() (PaymentStatus, error) {
	if p != PaymentUnrequested && p != PaymentRequested {
		return PaymentUnknown, errs.NewInvalidTransitionError("payment", "unrequested' or 'requested", p.String())
	}
	return PaymentRequested, nil
}

// Settle moves Requested to Paid.
func (p PaymentStatus) Settle() (PaymentStatus, error) {
	if p != PaymentRequested {
		return PaymentUnknown, errs.NewInvalidTransitionError("payment", PaymentRequested.String(), p.String())
	}
	return PaymentPaid, nil
}
