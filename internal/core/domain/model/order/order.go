package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order did not come from NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrVendorIsRequired      = errs.NewValueIsRequiredError("vendor id")
	ErrAddressIsRequired     = errs.NewValueIsRequiredError("address")
	ErrItemsAreRequired      = errs.NewValueIsRequiredError("items")
	ErrAgentIsRequired       = errs.NewValueIsRequiredError("agent id")
)

// Order is the aggregate root of the order desk. Identity, vendor, customer,
// address and items are fixed at construction; status, payment status, the
// timeline and the assigned agent change only through the transition methods.
//
// Every transition method validates first and mutates second, so a returned
// error always leaves the order untouched.
type Order struct {
	id             kernel.UUID
	vendorID       string
	customer       Customer
	address        string
	items          []Item
	instructions   string
	total          float64
	status         Status
	paymentStatus  PaymentStatus
	paymentRequest *PaymentRequest
	timeline       Timeline
	assignedAgent  *string
	guard          guard.ConstructorGuard
}

// Option sets an optional attribute during NewOrder.
type Option func(*Order)

// WithInstructions attaches free-form handling notes from the customer.
func WithInstructions(instructions string) Option {
	return func(o *Order) {
		o.instructions = strings.TrimSpace(instructions)
	}
}

// WithTotal records the order value priced from the catalog at creation.
func WithTotal(total float64) Option {
	return func(o *Order) {
		o.total = total
	}
}

// NewOrder creates a Pending order with payment Unrequested and created_at set.
// All field errors are joined into one error.
func NewOrder(
	id kernel.UUID,
	vendorID string,
	customer Customer,
	address string,
	items []Item,
	createdAt time.Time,
	opts ...Option,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentUnrequested,
		timeline:      Timeline{createdAt: createdAt},
		guard:         guard.NewConstructorGuard(),
	}

	for _, opt := range opts {
		opt(o)
	}

	if err := errors.Join(
		o.setID(id),
		o.setVendorID(vendorID),
		o.setCustomer(customer),
		o.setAddress(address),
		o.setItems(items),
		o.validateTotal(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order came from NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) VendorID() string {
	return o.vendorID
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Address() string {
	return o.address
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Instructions() string {
	return o.instructions
}

func (o *Order) Total() float64 {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentRequest returns the last recorded payment request, if any.
func (o *Order) PaymentRequest() (PaymentRequest, bool) {
	if o.paymentRequest == nil {
		return PaymentRequest{}, false
	}
	return *o.paymentRequest, true
}

func (o *Order) Timeline() Timeline {
	return o.timeline.clone()
}

// AssignedAgent returns the delivery agent id set by Assign.
func (o *Order) AssignedAgent() (string, bool) {
	if o.assignedAgent == nil {
		return "", false
	}
	return *o.assignedAgent, true
}

// Decide accepts or rejects a Pending order.
func (o *Order) Decide(accept bool, now time.Time) error {
	if accept {
		return o.transition(TransitionAccept, now)
	}
	return o.transition(TransitionReject, now)
}

// MarkReady moves an Accepted order to Ready.
func (o *Order) MarkReady(now time.Time) error {
	return o.transition(TransitionMarkReady, now)
}

// Assign hands a Ready order to a delivery agent. The caller resolves agentID
// against the agent directory before calling.
func (o *Order) Assign(agentID string, now time.Time) error {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return ErrAgentIsRequired
	}

	if err := o.transition(TransitionAssign, now); err != nil {
		return err
	}

	o.assignedAgent = &agentID
	return nil
}

// MarkDelivered moves an Assigned order to Delivered.
func (o *Order) MarkDelivered(now time.Time) error {
	return o.transition(TransitionDeliver, now)
}

// RequestPayment records a payment request on an Assigned or Delivered order.
// Status is unchanged; payment status becomes Requested.
func (o *Order) RequestPayment(request PaymentRequest) error {
	if err := o.status.ValidatePaymentRequest(); err != nil {
		return err
	}

	next, err := o.paymentStatus.Request()
	if err != nil {
		return err
	}

	o.paymentStatus = next
	o.paymentRequest = &request
	return nil
}

// ConfirmPayment settles a requested payment: payment status and status both become Paid.
func (o *Order) ConfirmPayment(now time.Time) error {
	nextPayment, err := o.paymentStatus.Settle()
	if err != nil {
		return err
	}

	if err = o.transition(TransitionSettle, now); err != nil {
		return err
	}

	o.paymentStatus = nextPayment
	return nil
}

// Clone returns a deep copy sharing no mutable state with o.
func (o *Order) Clone() *Order {
	c := *o
	c.items = o.Items()
	c.timeline = o.timeline.clone()
	if o.paymentRequest != nil {
		pr := *o.paymentRequest
		c.paymentRequest = &pr
	}
	if o.assignedAgent != nil {
		agentID := *o.assignedAgent
		c.assignedAgent = &agentID
	}
	return &c
}

func (o *Order) transition(t Transition, now time.Time) error {
	next, err := o.status.Apply(t)
	if err != nil {
		return err
	}

	if stamp := o.timeline.stampFor(t); stamp != nil {
		if *stamp != nil {
			return fmt.Errorf("order %s: %s timestamp already set", o.id, next)
		}
		at := now
		*stamp = &at
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setVendorID(vendorID string) error {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return ErrVendorIsRequired
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) validateTotal() error {
	if o.total < 0 || math.IsNaN(o.total) || math.IsInf(o.total, 0) {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%v is not a valid total", o.total))
	}
	return nil
}
