package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/agent"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// AssignAgentCommandHandler assigns a Ready order to an agent from the directory.
//
// Checks run in this order: the order exists, the order is Ready, the agent
// exists. The first failure is returned and the order is left unchanged.
//
// Example:
//
//	handler := NewAssignAgentCommandHandler(uowFactory, agents, kernel.SystemClock{})
//	cmd, _ := NewAssignAgentCommand(orderID, "agent_2")
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order or agent
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // order is not Ready
//	}
//	sendTo(result.AgentInstruction.Contact, result.AgentInstruction.Message)
type AssignAgentCommandHandler struct {
	uowFactory OrderUoWFactory
	agents     ports.AgentDirectory
	clock      kernel.Clock
	messages   services.MessageComposer
}

func NewAssignAgentCommandHandler(
	uowFactory OrderUoWFactory,
	agents ports.AgentDirectory,
	clock kernel.Clock,
) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		agents:     agents,
		clock:      clock,
		messages:   services.NewMessageComposer(),
	}
}

func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	var assigned *agent.Agent
	o, err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		if _, err := o.Status().Apply(order.TransitionAssign); err != nil {
			return err
		}

		a, err := h.agents.Get(ctx, cmd.AgentID())
		if err != nil {
			return err
		}

		if err = o.Assign(a.ID(), h.clock.Now()); err != nil {
			return err
		}
		assigned = a
		return nil
	})
	if err != nil {
		return TransitionResult{}, err
	}

	result := newTransitionResult(o)
	result.VendorMessage = h.messages.VendorAssigned(o, assigned)
	result.AgentInstruction = &AgentInstruction{
		AgentID: assigned.ID(),
		Contact: assigned.Contact(),
		Message: h.messages.AgentPickup(o),
	}

	return result, nil
}
