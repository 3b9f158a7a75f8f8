package commands_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/agent"
	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

var fixedClock = kernel.ClockFunc(func() time.Time { return fixedNow })

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.ListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[order.Status]int)
	return counts, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) ListAll(ctx context.Context) ([]catalog.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]catalog.Item)
	return items, args.Error(1)
}

type MockAgentDirectory struct{ mock.Mock }

func (m *MockAgentDirectory) Get(ctx context.Context, id string) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*agent.Agent)
	return a, args.Error(1)
}

func (m *MockAgentDirectory) List(ctx context.Context) ([]*agent.Agent, error) {
	args := m.Called(ctx)
	agents, _ := args.Get(0).([]*agent.Agent)
	return agents, args.Error(1)
}

// uowFixture wires a factory, a unit of work and a repository with the calls
// every handler makes; tests add repository expectations on top.
type uowFixture struct {
	factory *MockOrderUoWFactory
	uow     *MockOrderUoW
	repo    *MockOrderRepository
}

func newUoWFixture() uowFixture {
	f := uowFixture{
		factory: new(MockOrderUoWFactory),
		uow:     new(MockOrderUoW),
		repo:    new(MockOrderRepository),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Once()
	f.uow.On("Rollback", mock.Anything).Return(nil).Once()
	return f
}

func (f uowFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.repo.AssertExpectations(t)
}

func testMenu(t *testing.T) []catalog.Item {
	t.Helper()
	chai, err := catalog.NewItem("chai", "Masala Chai", 20, "cup", true)
	require.NoError(t, err)
	samosa, err := catalog.NewItem("samosa", "Samosa", 15, "piece", true)
	require.NoError(t, err)
	squid, err := catalog.NewItem("squid", "Squid", 500, "kg", false)
	require.NoError(t, err)
	return []catalog.Item{chai, samosa, squid}
}

func testAgents(t *testing.T) []*agent.Agent {
	t.Helper()
	sam, err := agent.NewAgent("agent_1", "Sam", "919991112223")
	require.NoError(t, err)
	asha, err := agent.NewAgent("agent_2", "Asha", "918881112223")
	require.NoError(t, err)
	return []*agent.Agent{sam, asha}
}

// orderIn builds an order already moved to status.
func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Neha", "919876500001")
	require.NoError(t, err)
	item, err := order.NewItem("chai", 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "vendor_1", customer, "221B Baker St", []order.Item{item},
		fixedNow.Add(-time.Hour), order.WithTotal(40))
	require.NoError(t, err)

	at := fixedNow.Add(-time.Hour)
	steps := []func() error{
		func() error { return o.Decide(true, at) },
		func() error { return o.MarkReady(at) },
		func() error { return o.Assign("agent_1", at) },
		func() error { return o.MarkDelivered(at) },
	}
	for _, step := range steps {
		if o.Status() == status {
			break
		}
		require.NoError(t, step())
	}
	require.Equal(t, status, o.Status())
	return o
}
