package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrAssignAgentCommandIsNotConstructed = errors.New(
		"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
	)
	ErrAgentIDIsRequired = errs.NewValueIsRequiredError("agent_id")
)

// AssignAgentCommand hands a Ready order to a delivery agent.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID string

	guard guard.ConstructorGuard
}

func NewAssignAgentCommand(orderID, agentID string) (AssignAgentCommand, error) {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return AssignAgentCommand{}, ErrAgentIDIsRequired
	}

	id, err := parseOrderID(orderID)
	if err != nil {
		return AssignAgentCommand{}, err
	}

	return AssignAgentCommand{
		orderID: id,
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

func (c AssignAgentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignAgentCommand) AgentID() string {
	return c.agentID
}
