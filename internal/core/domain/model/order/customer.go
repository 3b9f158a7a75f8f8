package order

import (
	"errors"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrCustomerNameIsRequired   = errs.NewValueIsRequiredError("customer name")
	ErrCustomerPhoneIsRequired  = errs.NewValueIsRequiredError("customer phone")
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is the contact snapshot captured when an order is created.
type Customer struct {
	name  string
	phone string
	guard guard.ConstructorGuard
}

// NewCustomer trims and validates both fields.
func NewCustomer(name, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	var err error
	if name == "" {
		err = errors.Join(err, ErrCustomerNameIsRequired)
	}
	if phone == "" {
		err = errors.Join(err, ErrCustomerPhoneIsRequired)
	}
	if err != nil {
		return Customer{}, err
	}

	return Customer{name: name, phone: phone, guard: guard.NewConstructorGuard()}, nil
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Phone() string {
	return c.phone
}

// Validate ensures the customer came from NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}
