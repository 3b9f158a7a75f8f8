package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrSKUIsRequired        = errs.NewValueIsRequiredError("sku")
	ErrNameIsRequired       = errs.NewValueIsRequiredError("item name")
	ErrItemIsNotConstructed = errors.New("catalog Item must be created via NewItem constructor")
)

// Item is one sellable product on the vendor's menu. Price is per Unit.
type Item struct {
	sku       string
	name      string
	price     float64
	unit      string
	available bool
	guard     guard.ConstructorGuard
}

// NewItem validates a catalog entry. Unit defaults to "piece".
func NewItem(sku, name string, price float64, unit string, available bool) (Item, error) {
	sku = strings.TrimSpace(sku)
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = "piece"
	}

	var err error
	if sku == "" {
		err = errors.Join(err, ErrSKUIsRequired)
	}
	if name == "" {
		err = errors.Join(err, ErrNameIsRequired)
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not a valid price", price)))
	}
	if err != nil {
		return Item{}, err
	}

	return Item{
		sku:       sku,
		name:      name,
		price:     price,
		unit:      unit,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (i Item) SKU() string {
	return i.sku
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Price() float64 {
	return i.price
}

func (i Item) Unit() string {
	return i.unit
}

func (i Item) Available() bool {
	return i.available
}

// LineTotal is price times quantity.
func (i Item) LineTotal(quantity float64) float64 {
	return i.price * quantity
}

// Matches reports whether term is a case-insensitive substring of the name or SKU.
func (i Item) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	return strings.Contains(strings.ToLower(i.name), term) || strings.Contains(strings.ToLower(i.sku), term)
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
