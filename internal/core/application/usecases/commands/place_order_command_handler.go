package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// PlacedLine is a parsed line echoed back to the customer with its price.
type PlacedLine struct {
	SKU       string
	Name      string
	Quantity  float64
	Unit      string
	UnitPrice float64
	LineTotal float64
}

// PlaceOrderResult extends CreateOrderResult with the resolved lines.
type PlaceOrderResult struct {
	CreateOrderResult
	Lines []PlacedLine
}

// PlaceOrderCommandHandler parses free-text items against the menu and hands
// the structured order to CreateOrderCommandHandler.
type PlaceOrderCommandHandler struct {
	create  CreateOrderCommandHandler
	catalog ports.Catalog
	parser  services.ItemParser
}

func NewPlaceOrderCommandHandler(create CreateOrderCommandHandler, catalog ports.Catalog) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		create:  create,
		catalog: catalog,
		parser:  services.NewItemParser(),
	}
}

// Handle fails with *errs.ValueIsInvalidError listing every entry that could
// not be resolved, or *errs.ValueIsRequiredError when nothing parsed. No order
// is stored in either case.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	menu, err := h.catalog.ListAll(ctx)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	parsed, entryErrs := h.parser.Parse(cmd.ItemsText(), menu)
	if len(entryErrs) > 0 {
		return PlaceOrderResult{}, errs.NewValueIsInvalidErrorWithCause("items", errors.Join(entryErrs...))
	}
	if len(parsed) == 0 {
		return PlaceOrderResult{}, errs.NewValueIsRequiredErrorWithCause("items", errors.New("no valid items in order"))
	}

	lines := make([]OrderLine, 0, len(parsed))
	placed := make([]PlacedLine, 0, len(parsed))
	for _, p := range parsed {
		lines = append(lines, OrderLine{SKU: p.Item.SKU(), Quantity: p.Quantity})
		placed = append(placed, PlacedLine{
			SKU:       p.Item.SKU(),
			Name:      p.Item.Name(),
			Quantity:  p.Quantity,
			Unit:      p.Item.Unit(),
			UnitPrice: p.Item.Price(),
			LineTotal: p.Item.LineTotal(p.Quantity),
		})
	}

	createCmd, err := NewCreateOrderCommand(cmd.OrderID(), cmd.createInput(lines))
	if err != nil {
		return PlaceOrderResult{}, err
	}

	created, err := h.create.Handle(ctx, createCmd)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{CreateOrderResult: created, Lines: placed}, nil
}
