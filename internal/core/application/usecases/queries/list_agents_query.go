package queries

import (
	"context"
	"errors"

	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/guard"
)

var ErrListAgentsQueryIsNotConstructed = errors.New(
	"ListAgentsQuery must be created via NewListAgentsQuery constructor",
)

type ListAgentsQuery struct {
	guard guard.ConstructorGuard
}

func NewListAgentsQuery() ListAgentsQuery {
	return ListAgentsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListAgentsQuery) Validate() error {
	return q.guard.Validate(ErrListAgentsQueryIsNotConstructed)
}

type AgentView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type ListAgentsQueryHandler struct {
	agents ports.AgentDirectory
}

func NewListAgentsQueryHandler(agents ports.AgentDirectory) ListAgentsQueryHandler {
	return ListAgentsQueryHandler{agents: agents}
}

func (h ListAgentsQueryHandler) Handle(ctx context.Context, query ListAgentsQuery) ([]AgentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents, err := h.agents.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]AgentView, 0, len(agents))
	for _, a := range agents {
		views = append(views, AgentView{ID: a.ID(), Name: a.Name(), Contact: a.Contact()})
	}
	return views, nil
}
