package commands

import (
	"orderdesk/internal/core/domain/model/agent"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// AgentOption is a delivery agent offered to the vendor when an order is ready.
type AgentOption struct {
	ID   string
	Name string
}

// AgentInstruction is the pickup message addressed to the assigned agent.
type AgentInstruction struct {
	AgentID string
	Contact string
	Message string
}

// TransitionResult describes an order after a successful transition together
// with the notification texts the transition produced. Empty texts mean the
// transition has nothing to say to that party.
type TransitionResult struct {
	OrderID          kernel.UUID
	Status           order.Status
	PaymentStatus    order.PaymentStatus
	VendorMessage    string
	CustomerMessage  string
	AgentOptions     []AgentOption
	AgentInstruction *AgentInstruction
}

func newTransitionResult(o *order.Order) TransitionResult {
	return TransitionResult{
		OrderID:       o.ID(),
		Status:        o.Status(),
		PaymentStatus: o.PaymentStatus(),
	}
}

func agentOptions(agents []*agent.Agent) []AgentOption {
	options := make([]AgentOption, 0, len(agents))
	for _, a := range agents {
		options = append(options, AgentOption{ID: a.ID(), Name: a.Name()})
	}
	return options
}
