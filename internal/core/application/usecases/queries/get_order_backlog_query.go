package queries

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderBacklogQueryIsNotConstructed = errors.New(
	"GetOrderBacklogQuery must be created via NewGetOrderBacklogQuery constructor",
)

// GetOrderBacklogQuery counts orders per status across all vendors.
type GetOrderBacklogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderBacklogQuery() GetOrderBacklogQuery {
	return GetOrderBacklogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBacklogQueryIsNotConstructed)
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// OrderBacklogView lists every lifecycle status in lifecycle order, zeros included.
// Open counts orders that are neither Rejected nor Paid.
type OrderBacklogView struct {
	Counts []StatusCount `json:"counts"`
	Open   int           `json:"open"`
	Total  int           `json:"total"`
}

type GetOrderBacklogQueryHandler struct {
	orders ports.OrderReader
}

func NewGetOrderBacklogQueryHandler(orders ports.OrderReader) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{orders: orders}
}

func (h GetOrderBacklogQueryHandler) Handle(ctx context.Context, query GetOrderBacklogQuery) (OrderBacklogView, error) {
	if err := query.Validate(); err != nil {
		return OrderBacklogView{}, err
	}

	counts, err := h.orders.CountByStatus(ctx)
	if err != nil {
		return OrderBacklogView{}, err
	}

	var view OrderBacklogView
	for s := order.Pending; s <= order.Paid; s++ {
		n := counts[s]
		view.Counts = append(view.Counts, StatusCount{Status: s.String(), Count: n})
		view.Total += n
		if !s.IsTerminal() {
			view.Open += n
		}
	}
	return view, nil
}
