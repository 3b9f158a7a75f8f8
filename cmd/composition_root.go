package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "orderdesk/internal/adapters/in/http"
	mcpadapter "orderdesk/internal/adapters/in/mcp"
	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/adapters/out/memory/orderrepo"
	"orderdesk/internal/adapters/out/refdata"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	clock      kernel.Clock
	store      *orderrepo.Store
	uowFactory *memory.MemoryUnitOfWorkFactory
	refs       *refdata.Directory
	currency   string
}

// NewCompositionRoot loads reference data and creates an empty order store.
func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	refs, err := loadRefData(cfg.RefDataFile)
	if err != nil {
		return nil, err
	}

	profile, err := refs.Profile(context.Background())
	if err != nil {
		return nil, err
	}

	store := orderrepo.NewStore()
	return &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		clock:      kernel.SystemClock{},
		store:      store,
		uowFactory: memory.NewMemoryUnitOfWorkFactory(store),
		refs:       refs,
		currency:   profile.CurrencyCode(),
	}, nil
}

func loadRefData(path string) (*refdata.Directory, error) {
	if path == "" {
		return refdata.LoadDefault()
	}
	refs, err := refdata.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reference data %s: %w", path, err)
	}
	return refs, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.refs, c.clock)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.CreateCreateOrderCommandHandler(), c.refs)
}

func (c *CompositionRoot) CreateDecideOrderCommandHandler() commands.DecideOrderCommandHandler {
	return commands.NewDecideOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	return commands.NewMarkOrderReadyCommandHandler(c.orderUoWFactory(), c.refs, c.clock)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	return commands.NewAssignAgentCommandHandler(c.orderUoWFactory(), c.refs, c.clock)
}

func (c *CompositionRoot) CreateMarkOrderDeliveredCommandHandler() commands.MarkOrderDeliveredCommandHandler {
	return commands.NewMarkOrderDeliveredCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRequestPaymentCommandHandler() commands.RequestPaymentCommandHandler {
	return commands.NewRequestPaymentCommandHandler(c.orderUoWFactory(), c.currency)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListVendorOrdersQueryHandler() queries.ListVendorOrdersQueryHandler {
	return queries.NewListVendorOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.refs, c.refs)
}

func (c *CompositionRoot) CreateListAgentsQueryHandler() queries.ListAgentsQueryHandler {
	return queries.NewListAgentsQueryHandler(c.refs)
}

func (c *CompositionRoot) CreateGetBusinessProfileQueryHandler() queries.GetBusinessProfileQueryHandler {
	return queries.NewGetBusinessProfileQueryHandler(c.refs)
}

func (c *CompositionRoot) CreateGetOrderBacklogQueryHandler() queries.GetOrderBacklogQueryHandler {
	return queries.NewGetOrderBacklogQueryHandler(c.store)
}

// NewMCPServer registers every tool against freshly built handlers.
func (c *CompositionRoot) NewMCPServer() *mcpadapter.Server {
	return mcpadapter.NewServer(mcpadapter.Handlers{
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		DecideOrder:        c.CreateDecideOrderCommandHandler(),
		MarkOrderReady:     c.CreateMarkOrderReadyCommandHandler(),
		AssignAgent:        c.CreateAssignAgentCommandHandler(),
		MarkOrderDelivered: c.CreateMarkOrderDeliveredCommandHandler(),
		RequestPayment:     c.CreateRequestPaymentCommandHandler(),
		ConfirmPayment:     c.CreateConfirmPaymentCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListVendorOrders:   c.CreateListVendorOrdersQueryHandler(),
		GetMenu:            c.CreateGetMenuQueryHandler(),
		GetBusinessProfile: c.CreateGetBusinessProfileQueryHandler(),
	}, mcpadapter.Options{
		CallerIdentity:  c.cfg.CallerIdentity,
		DefaultVendorID: c.cfg.DefaultVendorID,
	}, c.logger)
}

// NewHTTPRouter serves the REST endpoints and mounts mcpServer at /mcp.
func (c *CompositionRoot) NewHTTPRouter(mcpServer *mcpadapter.Server) *echo.Echo {
	server := httpadapter.NewServer(
		c.CreateGetMenuQueryHandler(),
		c.CreateListVendorOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListAgentsQueryHandler(),
		c.logger,
	)
	return httpadapter.NewRouter(server, mcpServer.HTTPHandler(), httpadapter.RouterConfig{
		SharedSecret: c.cfg.SharedSecret,
		Logger:       c.logger,
	})
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrderBacklogQueryHandler(), c.cfg.BacklogReportSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
