package cmd_test

import (
	"io"
	"log/slog"
	"testing"

	"orderdesk/cmd"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *cmd.CompositionRoot {
	t.Helper()
	app, err := cmd.NewCompositionRoot(cmd.Config{
		SharedSecret:    "secret",
		DefaultVendorID: "vendor_1",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return app
}

func TestSeedDemoOrders(t *testing.T) {
	ctx := t.Context()
	app := newApp(t)

	ids, err := app.SeedDemoOrders(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	query, err := queries.NewListVendorOrdersQuery("vendor_1", "pending")
	require.NoError(t, err)
	views, err := app.CreateListVendorOrdersQueryHandler().Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, views, 2)

	totals := map[string]float64{}
	for _, v := range views {
		totals[v.CustomerName] = v.Total
	}
	assert.Equal(t, map[string]float64{"Neha": 40, "Arjun": 90}, totals)
}

func TestCompositionRoot_SharesOneStore(t *testing.T) {
	ctx := t.Context()
	app := newApp(t)
	ids, err := app.SeedDemoOrders(ctx)
	require.NoError(t, err)

	decide, err := commands.NewDecideOrderCommand(ids[0].String(), true)
	require.NoError(t, err)
	_, err = app.CreateDecideOrderCommandHandler().Handle(ctx, decide)
	require.NoError(t, err)

	get, err := queries.NewGetOrderQuery(ids[0].String())
	require.NoError(t, err)
	view, err := app.CreateGetOrderQueryHandler().Handle(ctx, get)
	require.NoError(t, err)
	assert.Equal(t, "accepted", view.Status)

	backlog, err := app.CreateGetOrderBacklogQueryHandler().Handle(ctx, queries.NewGetOrderBacklogQuery())
	require.NoError(t, err)
	assert.Equal(t, 2, backlog.Open)
}

func TestNewCompositionRoot_BadRefDataFile(t *testing.T) {
	_, err := cmd.NewCompositionRoot(cmd.Config{RefDataFile: "does-not-exist.yaml"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Error(t, err)
}
