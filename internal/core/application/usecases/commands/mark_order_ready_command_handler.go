package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// MarkOrderReadyCommandHandler marks an order Ready and offers the vendor
// the delivery agents to choose from.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
	agents     ports.AgentDirectory
	clock      kernel.Clock
	messages   services.MessageComposer
}

func NewMarkOrderReadyCommandHandler(
	uowFactory OrderUoWFactory,
	agents ports.AgentDirectory,
	clock kernel.Clock,
) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
		agents:     agents,
		clock:      clock,
		messages:   services.NewMessageComposer(),
	}
}

// Handle loads the agent list before touching the order so a directory
// failure leaves the order Accepted.
func (h MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	agents, err := h.agents.List(ctx)
	if err != nil {
		return TransitionResult{}, err
	}

	o, err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.MarkReady(h.clock.Now())
	})
	if err != nil {
		return TransitionResult{}, err
	}

	result := newTransitionResult(o)
	result.VendorMessage = h.messages.VendorReady(o)
	result.AgentOptions = agentOptions(agents)

	return result, nil
}
