package order

import (
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──accept──> Accepted ──markReady──> Ready ──assign──> Assigned ──deliver──> Delivered
//	   │                                                             │                     │
//	   └──reject──> Rejected                                         └──────settle─────────┴──> Paid
//
// Rejected and Paid are terminal. Settle only fires once a payment has been requested,
// which PaymentStatus tracks separately.
type Status int

const (
	// Unknown is the zero value and never a valid state.
	Unknown Status = iota
	Pending
	Accepted
	Rejected
	Ready
	Assigned
	Delivered
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Rejected:  "rejected",
		Ready:     "ready",
		Assigned:  "assigned",
		Delivered: "delivered",
		Paid:      "paid",
	}
}

// ParseStatus converts the wire name of a status (case-insensitive) into a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Paid {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further status transition can leave s.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Paid
}

// Transition names an edge of the status graph.
type Transition int

const (
	TransitionAccept Transition = iota + 1
	TransitionReject
	TransitionMarkReady
	TransitionAssign
	TransitionDeliver
	TransitionSettle
)

type edge struct {
	from []Status
	to   Status
}

func (t Transition) edge() (edge, bool) {
	switch t {
	case TransitionAccept:
		return edge{from: []Status{Pending}, to: Accepted}, true
	case TransitionReject:
		return edge{from: []Status{Pending}, to: Rejected}, true
	case TransitionMarkReady:
		return edge{from: []Status{Accepted}, to: Ready}, true
	case TransitionAssign:
		return edge{from: []Status{Ready}, to: Assigned}, true
	case TransitionDeliver:
		return edge{from: []Status{Assigned}, to: Delivered}, true
	case TransitionSettle:
		return edge{from: []Status{Assigned, Delivered}, to: Paid}, true
	}
	return edge{}, false
}

// Apply returns the status reached by taking t from s. An off-graph move yields an
// *errs.InvalidTransitionError naming the allowed source states and s.
func (s Status) Apply(t Transition) (Status, error) {
	e, ok := t.edge()
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("transition", fmt.Errorf("%d is not a known transition", t))
	}

	for _, from := range e.from {
		if s == from {
			return e.to, nil
		}
	}

	return Unknown, errs.NewInvalidTransitionError("order", joinStatuses(e.from), s.String())
}

// ValidatePaymentRequest checks that a payment may be requested while in s.
func (s Status) ValidatePaymentRequest() error {
	if s != Assigned && s != Delivered {
		return errs.NewInvalidTransitionError("order", joinStatuses([]Status{Assigned, Delivered}), s.String())
	}
	return nil
}

func joinStatuses(statuses []Status) string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return strings.Join(names, "' or '")
}
