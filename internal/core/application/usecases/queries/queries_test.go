package queries_test

import (
	"testing"
	"time"

	"orderdesk/internal/adapters/out/memory/orderrepo"
	"orderdesk/internal/adapters/out/refdata"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var baseTime = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type QueriesSuite struct {
	suite.Suite
	store *orderrepo.Store
	refs  *refdata.Directory
}

func TestQueriesSuite(t *testing.T) {
	suite.Run(t, new(QueriesSuite))
}

func (s *QueriesSuite) SetupTest() {
	s.store = orderrepo.NewStore()
	refs, err := refdata.LoadDefault()
	s.Require().NoError(err)
	s.refs = refs
}

func (s *QueriesSuite) addOrder(vendorID string, createdAt time.Time, accept bool) *order.Order {
	customer, err := order.NewCustomer("Arjun", "919876500002")
	s.Require().NoError(err)
	item, err := order.NewItem("samosa", 6)
	s.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), vendorID, customer, "MG Road, BLR", []order.Item{item},
		createdAt, order.WithTotal(90), order.WithInstructions("extra chutney"))
	s.Require().NoError(err)
	if accept {
		s.Require().NoError(o.Decide(true, createdAt.Add(time.Minute)))
	}
	s.Require().NoError(s.store.Apply([]orderrepo.Change{{Order: o, IsNew: true}}))
	return o
}

func (s *QueriesSuite) Test_GetOrder() {
	o := s.addOrder("vendor_1", baseTime, true)
	handler := queries.NewGetOrderQueryHandler(s.store)

	query, err := queries.NewGetOrderQuery(o.ID().String())
	s.Require().NoError(err)
	view, err := handler.Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.Equal(o.ID().String(), view.ID)
	s.Equal("accepted", view.Status)
	s.Equal("unrequested", view.PaymentStatus)
	s.Equal("extra chutney", view.Instructions)
	s.Equal(90.0, view.Total)
	s.Require().Len(view.Items, 1)
	s.Equal("samosa", view.Items[0].SKU)
	s.Equal("2025-03-14T09:00:00Z", view.CreatedAt)
	s.Equal("2025-03-14T09:01:00Z", view.AcceptedAt)
	s.Empty(view.ReadyAt)
	s.Nil(view.PaymentRequest)
}

func (s *QueriesSuite) Test_GetOrder_Unknown() {
	handler := queries.NewGetOrderQueryHandler(s.store)

	query, err := queries.NewGetOrderQuery(kernel.NewUUID().String())
	s.Require().NoError(err)
	_, err = handler.Handle(s.T().Context(), query)

	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueriesSuite) Test_NewGetOrderQuery_BadInput() {
	_, err := queries.NewGetOrderQuery("")
	s.ErrorIs(err, errs.ErrValueIsRequired)

	_, err = queries.NewGetOrderQuery("ord-42")
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueriesSuite) Test_HandleRejectsZeroQuery() {
	_, err := queries.NewGetOrderQueryHandler(s.store).Handle(s.T().Context(), queries.GetOrderQuery{})

	s.ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func (s *QueriesSuite) Test_ListVendorOrders() {
	older := s.addOrder("vendor_1", baseTime, false)
	newer := s.addOrder("vendor_1", baseTime.Add(time.Hour), true)
	s.addOrder("vendor_2", baseTime.Add(2*time.Hour), false)
	handler := queries.NewListVendorOrdersQueryHandler(s.store)

	s.Run("newest first", func() {
		query, err := queries.NewListVendorOrdersQuery("vendor_1", "")
		s.Require().NoError(err)
		views, err := handler.Handle(s.T().Context(), query)

		s.Require().NoError(err)
		s.Require().Len(views, 2)
		s.Equal(newer.ID().String(), views[0].ID)
		s.Equal(older.ID().String(), views[1].ID)
	})

	s.Run("status filter", func() {
		query, err := queries.NewListVendorOrdersQuery("vendor_1", "Pending")
		s.Require().NoError(err)
		views, err := handler.Handle(s.T().Context(), query)

		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal(older.ID().String(), views[0].ID)
	})

	s.Run("no matches is empty", func() {
		query, err := queries.NewListVendorOrdersQuery("vendor_9", "")
		s.Require().NoError(err)
		views, err := handler.Handle(s.T().Context(), query)

		s.Require().NoError(err)
		s.Empty(views)
	})

	s.Run("unknown status", func() {
		_, err := queries.NewListVendorOrdersQuery("vendor_1", "cooking")
		s.ErrorIs(err, errs.ErrValueIsInvalid)
	})

	s.Run("vendor required", func() {
		_, err := queries.NewListVendorOrdersQuery(" ", "")
		s.ErrorIs(err, errs.ErrValueIsRequired)
	})
}

func (s *QueriesSuite) Test_GetMenu() {
	handler := queries.NewGetMenuQueryHandler(s.refs, s.refs)

	s.Run("full menu", func() {
		view, err := handler.Handle(s.T().Context(), queries.NewGetMenuQuery(""))

		s.Require().NoError(err)
		s.Equal("Manglore FishMonger", view.Business)
		s.Equal("INR", view.Currency)
		s.Len(view.Items, 16)
	})

	s.Run("search is case-insensitive", func() {
		view, err := handler.Handle(s.T().Context(), queries.NewGetMenuQuery("PRAWNS"))

		s.Require().NoError(err)
		s.Require().Len(view.Items, 2)
		s.Equal("Tiger Prawns", view.Items[0].Name)
		s.Equal("White Prawns", view.Items[1].Name)
	})

	s.Run("unavailable items are listed", func() {
		view, err := handler.Handle(s.T().Context(), queries.NewGetMenuQuery("squid"))

		s.Require().NoError(err)
		s.Require().Len(view.Items, 1)
		s.False(view.Items[0].Available)
	})

	s.Run("no match", func() {
		_, err := handler.Handle(s.T().Context(), queries.NewGetMenuQuery("lobster"))

		s.ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (s *QueriesSuite) Test_ListAgents() {
	views, err := queries.NewListAgentsQueryHandler(s.refs).Handle(s.T().Context(), queries.NewListAgentsQuery())

	s.Require().NoError(err)
	s.Equal([]queries.AgentView{
		{ID: "agent_1", Name: "Sam", Contact: "919991112223"},
		{ID: "agent_2", Name: "Asha", Contact: "918881112223"},
		{ID: "agent_3", Name: "Raj", Contact: "917771112223"},
	}, views)
}

func (s *QueriesSuite) Test_GetBusinessProfile() {
	view, err := queries.NewGetBusinessProfileQueryHandler(s.refs).
		Handle(s.T().Context(), queries.NewGetBusinessProfileQuery())

	s.Require().NoError(err)
	s.Equal("Rajesh Pai", view.Owner)
	s.Equal("Fish Market Road, Mangalore, Karnataka 575001", view.Address)
	s.Equal("Open daily 6AM-8PM", view.Hours)
}

func (s *QueriesSuite) Test_GetOrderBacklog() {
	s.addOrder("vendor_1", baseTime, false)
	s.addOrder("vendor_1", baseTime, true)
	s.addOrder("vendor_2", baseTime, true)

	view, err := queries.NewGetOrderBacklogQueryHandler(s.store).
		Handle(s.T().Context(), queries.NewGetOrderBacklogQuery())

	s.Require().NoError(err)
	s.Equal(3, view.Total)
	s.Equal(3, view.Open)
	s.Require().Len(view.Counts, 7)
	s.Equal(queries.StatusCount{Status: "pending", Count: 1}, view.Counts[0])
	s.Equal(queries.StatusCount{Status: "accepted", Count: 2}, view.Counts[1])
	s.Equal(queries.StatusCount{Status: "paid", Count: 0}, view.Counts[6])
}
