// Package ports defines the contracts between the order desk core and its
// adapters: order storage with unit-of-work control, and the read-only
// reference data (catalog, agents, business profile).
package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// ListFilter narrows List to one vendor and, optionally, one status.
type ListFilter struct {
	VendorID string
	Status   *order.Status
}

// OrderReader is the read side of order storage.
type OrderReader interface {
	// Get retrieves an order by id. A missing order yields *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns the vendor's orders matching the filter, newest first.
	// Orders created at the same instant keep their insertion order.
	// An empty result is not an error.
	List(ctx context.Context, filter ListFilter) ([]*order.Order, error)

	// CountByStatus returns how many orders are in each status across all vendors.
	CountByStatus(ctx context.Context) (map[order.Status]int, error)
}

// OrderRepository defines the persistence contract for order aggregates.
// Instances bound to a UnitOfWork hold the order they read until the unit
// of work ends, so no other unit of work can change it in between.
type OrderRepository interface {
	OrderReader

	// Add stages a new order. It becomes visible on Commit.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stages changes to an order previously read with Get.
	Update(ctx context.Context, aggregate *order.Order) error
}
