package cmd

import (
	"context"
	"fmt"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
)

var demoOrders = []commands.CreateOrderInput{
	{
		CustomerName:  "Neha",
		CustomerPhone: "919876500001",
		Address:       "221B Baker St",
		Items:         []commands.OrderLine{{SKU: "chai", Quantity: 2}},
	},
	{
		CustomerName:  "Arjun",
		CustomerPhone: "919876500002",
		Address:       "MG Road, BLR",
		Items:         []commands.OrderLine{{SKU: "samosa", Quantity: 6}},
	},
}

// SeedDemoOrders creates the demo orders for the default vendor and returns their ids.
func (c *CompositionRoot) SeedDemoOrders(ctx context.Context) ([]kernel.UUID, error) {
	handler := c.CreateCreateOrderCommandHandler()

	ids := make([]kernel.UUID, 0, len(demoOrders))
	for _, in := range demoOrders {
		in.VendorID = c.cfg.DefaultVendorID
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), in)
		if err != nil {
			return nil, fmt.Errorf("demo order for %s: %w", in.CustomerName, err)
		}
		res, err := handler.Handle(ctx, cmd)
		if err != nil {
			return nil, fmt.Errorf("demo order for %s: %w", in.CustomerName, err)
		}
		ids = append(ids, res.OrderID)
	}

	c.logger.Info("seeded demo orders", "vendor_id", c.cfg.DefaultVendorID, "count", len(ids))
	return ids, nil
}
