package services

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// OrderPricer checks order lines against the menu and prices them.
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price returns the sum of price × quantity over items. Every SKU must exist
// in menu and be available; all failures are reported in one
// *errs.ValueIsInvalidError for "items".
func (p OrderPricer) Price(items []order.Item, menu []catalog.Item) (float64, error) {
	if len(items) == 0 {
		return 0, order.ErrItemsAreRequired
	}

	bySKU := make(map[string]catalog.Item, len(menu))
	for _, m := range menu {
		bySKU[m.SKU()] = m
	}

	var (
		total    float64
		problems []error
	)
	for _, item := range items {
		m, ok := bySKU[item.SKU()]
		switch {
		case !ok:
			problems = append(problems, fmt.Errorf("'%s' %w", item.SKU(), ErrUnknownItem))
		case !m.Available():
			problems = append(problems, fmt.Errorf("'%s' is %w", m.Name(), ErrOutOfStock))
		default:
			total += m.LineTotal(item.Quantity())
		}
	}

	if len(problems) > 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("items", errors.Join(problems...))
	}
	return total, nil
}
