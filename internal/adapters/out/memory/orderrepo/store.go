package orderrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// Change is one staged write applied by Store.Apply.
type Change struct {
	Order *order.Order
	IsNew bool
}

type record struct {
	order *order.Order
	seq   uint64
	// lock holds one token while a unit of work owns the order.
	lock chan struct{}
}

// Store keeps committed orders in memory for the lifetime of the process.
//
// The map is guarded by mu, which is only held for lookups and for applying
// a commit. Each order also carries its own lock that a unit of work takes on
// first read and keeps until it ends, so transitions on one order are
// serialised while different orders never wait on each other.
//
// Store returns clones; callers never share an *order.Order with it.
type Store struct {
	mu      sync.RWMutex
	records map[kernel.UUID]*record
	seq     uint64
}

func NewStore() *Store {
	return &Store{records: make(map[kernel.UUID]*record)}
}

// Get returns a copy of the committed order.
func (s *Store) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order_id", id.String())
	}
	return rec.order.Clone(), nil
}

// Exists reports whether id has been committed.
func (s *Store) Exists(id kernel.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.records[id]
	return ok
}

// List returns matching orders newest first; equal creation times keep insertion order.
func (s *Store) List(_ context.Context, filter ports.ListFilter) ([]*order.Order, error) {
	s.mu.RLock()
	matched := make([]*record, 0)
	for _, rec := range s.records {
		if rec.order.VendorID() != filter.VendorID {
			continue
		}
		if filter.Status != nil && rec.order.Status() != *filter.Status {
			continue
		}
		matched = append(matched, rec)
	}

	orders := make([]*order.Order, 0, len(matched))
	sort.Slice(matched, func(i, j int) bool {
		ci, cj := matched[i].order.Timeline().CreatedAt(), matched[j].order.Timeline().CreatedAt()
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return matched[i].seq < matched[j].seq
	})
	for _, rec := range matched {
		orders = append(orders, rec.order.Clone())
	}
	s.mu.RUnlock()

	return orders, nil
}

func (s *Store) CountByStatus(_ context.Context) (map[order.Status]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[order.Status]int)
	for _, rec := range s.records {
		counts[rec.order.Status()]++
	}
	return counts, nil
}

// Lock takes the per-order lock, waiting until it is free or ctx is done.
// The returned function releases it and must be called exactly once.
func (s *Store) Lock(ctx context.Context, id kernel.UUID) (func(), error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("order_id", id.String())
	}

	select {
	case rec.lock <- struct{}{}:
		return func() { <-rec.lock }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Apply writes every change or none of them. New orders must not exist yet;
// updated orders must.
func (s *Store) Apply(changes []Change) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range changes {
		_, exists := s.records[c.Order.ID()]
		switch {
		case c.IsNew && exists:
			return errs.NewValueIsInvalidErrorWithCause("order_id", fmt.Errorf("order %s already exists", c.Order.ID()))
		case !c.IsNew && !exists:
			return errs.NewObjectNotFoundError("order_id", c.Order.ID().String())
		}
	}

	for _, c := range changes {
		if c.IsNew {
			s.seq++
			s.records[c.Order.ID()] = &record{
				order: c.Order.Clone(),
				seq:   s.seq,
				lock:  make(chan struct{}, 1),
			}
			continue
		}
		s.records[c.Order.ID()].order = c.Order.Clone()
	}

	return nil
}
