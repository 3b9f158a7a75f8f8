package agent

import (
	"errors"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// Domain errors for delivery agents.
var (
	// ErrIDIsRequired is returned when attempting to create an agent without an id.
	ErrIDIsRequired = errs.NewValueIsRequiredError("agent id")
	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("agent name")
	// ErrContactIsRequired is returned when attempting to create an agent without a phone contact.
	ErrContactIsRequired = errs.NewValueIsRequiredError("agent contact")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
)

// Agent is a delivery agent that can be assigned to a Ready order.
// Agents come from reference data and never change while the process runs.
//
// Business rules:
//   - id, name and contact are all required
//   - contact is the phone number the pickup instruction is addressed to
type Agent struct {
	// id is the stable directory key, e.g. "agent_1"
	id string
	// name is shown to vendors when choosing an agent
	name string
	// contact is the agent's phone number
	contact string
	// guard ensures the agent was properly constructed
	guard guard.ConstructorGuard
}

// NewAgent creates an Agent after trimming and validating every field.
//
// Example usage:
//
//	a, err := agent.NewAgent("agent_1", "Sam", "919991112223")
func NewAgent(id, name, contact string) (*Agent, error) {
	a := &Agent{
		id:      strings.TrimSpace(id),
		name:    strings.TrimSpace(name),
		contact: strings.TrimSpace(contact),
		guard:   guard.NewConstructorGuard(),
	}

	var err error
	if a.id == "" {
		err = errors.Join(err, ErrIDIsRequired)
	}
	if a.name == "" {
		err = errors.Join(err, ErrNameIsRequired)
	}
	if a.contact == "" {
		err = errors.Join(err, ErrContactIsRequired)
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the agent was created via NewAgent.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

func (a *Agent) ID() string {
	return a.id
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Contact() string {
	return a.contact
}
