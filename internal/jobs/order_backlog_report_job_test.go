package jobs_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/memory/orderrepo"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, store *orderrepo.Store, rejected bool) {
	t.Helper()
	customer, err := order.NewCustomer("Arjun", "919876500002")
	require.NoError(t, err)
	item, err := order.NewItem("samosa", 6)
	require.NoError(t, err)
	now := time.Now().UTC()
	o, err := order.NewOrder(kernel.NewUUID(), "vendor_1", customer, "MG Road, BLR", []order.Item{item}, now)
	require.NoError(t, err)
	if rejected {
		require.NoError(t, o.Decide(false, now))
	}
	require.NoError(t, store.Apply([]orderrepo.Change{{Order: o, IsNew: true}}))
}

func TestOrderBacklogReportJob_Run(t *testing.T) {
	store := orderrepo.NewStore()
	seed(t, store, false)
	seed(t, store, false)
	seed(t, store, true)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	job := jobs.NewOrderBacklogReportJob(queries.NewGetOrderBacklogQueryHandler(store), "", logger)

	require.NoError(t, job.Run(t.Context()))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Order backlog", entry["msg"])
	assert.Equal(t, "order_backlog_report_job", entry["component"])
	assert.EqualValues(t, 3, entry["total"])
	assert.EqualValues(t, 2, entry["open"])
	assert.EqualValues(t, 2, entry["pending"])
	assert.EqualValues(t, 1, entry["rejected"])
	assert.EqualValues(t, 0, entry["paid"])
}

func TestOrderBacklogReportJob_Schedule(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := queries.NewGetOrderBacklogQueryHandler(orderrepo.NewStore())

	t.Run("invalid schedule fails to start", func(t *testing.T) {
		job := jobs.NewOrderBacklogReportJob(handler, "every so often", logger)

		assert.Error(t, job.Start())
	})

	t.Run("manager starts and stops", func(t *testing.T) {
		manager := jobs.NewJobManager(handler, "@every 1h", logger)

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})
}
