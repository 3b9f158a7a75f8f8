package queries

import (
	"context"
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrListVendorOrdersQueryIsNotConstructed = errors.New(
	"ListVendorOrdersQuery must be created via NewListVendorOrdersQuery constructor",
)

// ListVendorOrdersQuery lists one vendor's orders, optionally filtered by status.
//
// Example:
//
//	query, err := NewListVendorOrdersQuery("vendor_1", "pending")
//	if err != nil {
//	    return err // unknown status names are rejected here
//	}
//	views, err := handler.Handle(ctx, query)
//	// views are newest first; an empty slice means no matching orders
type ListVendorOrdersQuery struct {
	vendorID string
	status   *order.Status
	guard    guard.ConstructorGuard
}

// NewListVendorOrdersQuery builds the query. An empty status means all statuses.
func NewListVendorOrdersQuery(vendorID, status string) (ListVendorOrdersQuery, error) {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return ListVendorOrdersQuery{}, errs.NewValueIsRequiredError("vendor_id")
	}

	q := ListVendorOrdersQuery{vendorID: vendorID, guard: guard.NewConstructorGuard()}
	if strings.TrimSpace(status) != "" {
		s, err := order.ParseStatus(status)
		if err != nil {
			return ListVendorOrdersQuery{}, err
		}
		q.status = &s
	}

	return q, nil
}

func (q ListVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListVendorOrdersQueryIsNotConstructed)
}

type ListVendorOrdersQueryHandler struct {
	orders ports.OrderReader
}

func NewListVendorOrdersQueryHandler(orders ports.OrderReader) ListVendorOrdersQueryHandler {
	return ListVendorOrdersQueryHandler{orders: orders}
}

func (h ListVendorOrdersQueryHandler) Handle(ctx context.Context, query ListVendorOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.List(ctx, ports.ListFilter{VendorID: query.vendorID, Status: query.status})
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views, nil
}
