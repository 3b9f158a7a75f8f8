package order

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
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is one order line: a catalog SKU and a positive quantity in the SKU's unit.
type Item struct {
	sku      string
	quantity float64
	guard    guard.ConstructorGuard
}

// NewItem validates the SKU and quantity of a line.
func NewItem(sku string, quantity float64) (Item, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return Item{}, ErrSKUIsRequired
	}
	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%v is not a positive quantity for %s", quantity, sku),
		)
	}

	return Item{sku: sku, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
}

func (i Item) SKU() string {
	return i.sku
}

func (i Item) Quantity() float64 {
	return i.quantity
}

// Validate ensures the item came from NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
