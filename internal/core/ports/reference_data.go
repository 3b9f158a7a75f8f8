package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/agent"
	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/vendor"
)

// Catalog is the read-only menu.
type Catalog interface {
	// ListAll returns every item in menu order, available or not.
	ListAll(ctx context.Context) ([]catalog.Item, error)
}

// AgentDirectory is the read-only list of delivery agents.
type AgentDirectory interface {
	// Get returns *errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id string) (*agent.Agent, error)
	List(ctx context.Context) ([]*agent.Agent, error)
}

// BusinessDirectory exposes the profile of the business running the desk.
type BusinessDirectory interface {
	Profile(ctx context.Context) (vendor.Profile, error)
}
