// Package memory provides an in-process implementation of the Unit of Work pattern
// over orderrepo.Store.
//
// A unit of work takes the lock of every order it reads and keeps it until
// Commit or Rollback, which gives each order transition exclusive access for
// its read-validate-write cycle. Writes are staged and applied to the store in
// one step on Commit; Rollback simply drops them.
//
// Usage:
//
//	factory := NewMemoryUnitOfWorkFactory(store)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().Get(ctx, id) // order is now locked
//	if err != nil {
//	    return err
//	}
//	if err = o.MarkReady(now); err != nil {
//	    return err
//	}
//	if err = uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx) // applies the update, releases the lock
//
// A MemoryUnitOfWork is not safe for concurrent use; create one per operation.
package memory

import (
	"context"
	"errors"

	"orderdesk/internal/adapters/out/memory/orderrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// ErrNoActiveUnitOfWork is returned when Commit or a repository read runs outside Begin.
var ErrNoActiveUnitOfWork = errors.New("no active unit of work")

// trackedAggregate is an order staged during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate *order.Order
	IsNew     bool
}

// MemoryUnitOfWorkFactory creates units of work sharing one Store.
type MemoryUnitOfWorkFactory struct {
	store *orderrepo.Store
}

func NewMemoryUnitOfWorkFactory(store *orderrepo.Store) *MemoryUnitOfWorkFactory {
	return &MemoryUnitOfWorkFactory{store: store}
}

// Create produces a fresh unit of work with nothing held or staged.
func (f *MemoryUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &MemoryUnitOfWork{store: f.store}
}

type MemoryUnitOfWork struct {
	store             *orderrepo.Store
	active            bool
	held              map[kernel.UUID]func()
	trackedAggregates []trackedAggregate
}

// Begin starts the unit of work. Calling it again while active is a no-op.
func (uow *MemoryUnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.active = true
	uow.held = make(map[kernel.UUID]func())
	uow.trackedAggregates = make([]trackedAggregate, 0)
	return nil
}

// Commit applies every staged order and releases held locks. If the store
// refuses the changes nothing is written and the locks are still released.
func (uow *MemoryUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveUnitOfWork
	}
	defer uow.end()

	changes := make([]orderrepo.Change, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		changes = append(changes, orderrepo.Change{Order: t.Aggregate, IsNew: t.IsNew})
	}

	return uow.store.Apply(changes)
}

// Rollback drops staged changes and releases held locks. It is a no-op when
// the unit of work has already ended.
func (uow *MemoryUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}

	uow.end()
	return nil
}

func (uow *MemoryUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewMemoryOrderRepository(uow.store, uow)
}

// Hold takes the order lock once per unit of work.
func (uow *MemoryUnitOfWork) Hold(ctx context.Context, id kernel.UUID) error {
	if !uow.active {
		return ErrNoActiveUnitOfWork
	}
	if _, ok := uow.held[id]; ok {
		return nil
	}

	unlock, err := uow.store.Lock(ctx, id)
	if err != nil {
		return err
	}

	uow.held[id] = unlock
	return nil
}

func (uow *MemoryUnitOfWork) IsHeld(id kernel.UUID) bool {
	_, ok := uow.held[id]
	return ok
}

// TrackAggregate stages aggregate, replacing an earlier staged copy. An order
// first staged as new stays new.
func (uow *MemoryUnitOfWork) TrackAggregate(aggregate *order.Order, isNew bool) {
	for i, t := range uow.trackedAggregates {
		if t.ID.IsEqual(aggregate.ID()) {
			uow.trackedAggregates[i].Aggregate = aggregate
			return
		}
	}

	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        aggregate.ID(),
		Aggregate: aggregate,
		IsNew:     isNew,
	})
}

// Tracked returns the staged copy of id, if any.
func (uow *MemoryUnitOfWork) Tracked(id kernel.UUID) (*order.Order, bool) {
	for _, t := range uow.trackedAggregates {
		if t.ID.IsEqual(id) {
			return t.Aggregate, true
		}
	}
	return nil, false
}

func (uow *MemoryUnitOfWork) end() {
	for _, unlock := range uow.held {
		unlock()
	}
	uow.held = nil
	uow.trackedAggregates = nil
	uow.active = false
}
