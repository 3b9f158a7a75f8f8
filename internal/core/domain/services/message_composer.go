package services

import (
	"fmt"

	"orderdesk/internal/core/domain/model/agent"
	"orderdesk/internal/core/domain/model/order"
)

// MessageComposer renders the notification texts that accompany order
// transitions. It only formats; delivering the text is the caller's job.
type MessageComposer struct{}

func NewMessageComposer() MessageComposer {
	return MessageComposer{}
}

func (MessageComposer) VendorAccepted(o *order.Order) string {
	return fmt.Sprintf("Order %s accepted.", o.ID())
}

func (MessageComposer) CustomerAccepted(o *order.Order) string {
	return fmt.Sprintf("Your order %s is confirmed and being processed.", o.ID())
}

func (MessageComposer) VendorRejected(o *order.Order) string {
	return fmt.Sprintf("Order %s rejected.", o.ID())
}

func (MessageComposer) CustomerRejected(*order.Order) string {
	return "Unfortunately, your order could not be completed."
}

func (MessageComposer) VendorReady(o *order.Order) string {
	return fmt.Sprintf("Order %s is ready. Choose a delivery agent.", o.ID())
}

func (MessageComposer) VendorAssigned(o *order.Order, a *agent.Agent) string {
	return fmt.Sprintf("Agent %s assigned to order %s.", a.Name(), o.ID())
}

func (MessageComposer) AgentPickup(o *order.Order) string {
	return fmt.Sprintf("Please pick up order %s and deliver to %s at %s.", o.ID(), o.Customer().Name(), o.Address())
}

func (MessageComposer) VendorPaymentRequested(o *order.Order, pr order.PaymentRequest) string {
	return fmt.Sprintf("Payment request of %s sent for order %s.", pr, o.ID())
}
