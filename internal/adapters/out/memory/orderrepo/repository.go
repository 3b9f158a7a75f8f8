// Package orderrepo implements order storage in process memory.
package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// ErrOrderNotHeld is returned by Update for an order this unit of work never read.
var ErrOrderNotHeld = errors.New("order must be read with Get in the same unit of work before Update")

// aggregateTracker is the unit of work seen from the repository.
type aggregateTracker interface {
	Hold(ctx context.Context, id kernel.UUID) error
	IsHeld(id kernel.UUID) bool
	TrackAggregate(aggregate *order.Order, isNew bool)
	Tracked(id kernel.UUID) (*order.Order, bool)
}

// MemoryOrderRepository implements ports.OrderRepository for one unit of work.
// Reads see the unit's own staged writes; writes reach the Store on Commit.
type MemoryOrderRepository struct {
	store   *Store
	tracker aggregateTracker
}

func NewMemoryOrderRepository(store *Store, tracker aggregateTracker) *MemoryOrderRepository {
	return &MemoryOrderRepository{store: store, tracker: tracker}
}

// Add stages a new order.
func (r *MemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	_, staged := r.tracker.Tracked(aggregate.ID())
	if staged || r.store.Exists(aggregate.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("order_id", fmt.Errorf("order %s already exists", aggregate.ID()))
	}

	r.tracker.TrackAggregate(aggregate.Clone(), true)
	return nil
}

// Update stages changes to an order held by this unit of work.
func (r *MemoryOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if !r.tracker.IsHeld(aggregate.ID()) {
		if _, staged := r.tracker.Tracked(aggregate.ID()); !staged {
			return ErrOrderNotHeld
		}
	}

	r.tracker.TrackAggregate(aggregate.Clone(), false)
	return nil
}

// Get locks the order for the rest of the unit of work and returns a copy.
func (r *MemoryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if staged, ok := r.tracker.Tracked(id); ok {
		return staged.Clone(), nil
	}

	if err := r.tracker.Hold(ctx, id); err != nil {
		return nil, err
	}

	return r.store.Get(ctx, id)
}

// List reads committed state only.
func (r *MemoryOrderRepository) List(ctx context.Context, filter ports.ListFilter) ([]*order.Order, error) {
	return r.store.List(ctx, filter)
}

func (r *MemoryOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	return r.store.CountByStatus(ctx)
}
