package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage its lifecycle:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil { ... }
//	defer uow.Rollback(ctx)
//	... uow.OrderRepository().Get / Update ...
//	return uow.Commit(ctx)
type UnitOfWork interface {
	// Begin starts a new unit of work.
	Begin(ctx context.Context) error

	// Commit applies every staged change and releases held orders.
	// Returns error if no unit of work is active.
	Commit(ctx context.Context) error

	// Rollback discards staged changes and releases held orders.
	// Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current unit of work.
	OrderRepository() OrderRepository
}
