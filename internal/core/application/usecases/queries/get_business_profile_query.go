package queries

import (
	"context"
	"errors"

	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/guard"
)

var ErrGetBusinessProfileQueryIsNotConstructed = errors.New(
	"GetBusinessProfileQuery must be created via NewGetBusinessProfileQuery constructor",
)

type GetBusinessProfileQuery struct {
	guard guard.ConstructorGuard
}

func NewGetBusinessProfileQuery() GetBusinessProfileQuery {
	return GetBusinessProfileQuery{guard: guard.NewConstructorGuard()}
}

func (q GetBusinessProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetBusinessProfileQueryIsNotConstructed)
}

type BusinessProfileView struct {
	Name     string `json:"business"`
	Owner    string `json:"owner,omitempty"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	MapLink  string `json:"map_link,omitempty"`
	Hours    string `json:"hours,omitempty"`
	Currency string `json:"currency"`
}

type GetBusinessProfileQueryHandler struct {
	business ports.BusinessDirectory
}

func NewGetBusinessProfileQueryHandler(business ports.BusinessDirectory) GetBusinessProfileQueryHandler {
	return GetBusinessProfileQueryHandler{business: business}
}

func (h GetBusinessProfileQueryHandler) Handle(ctx context.Context, query GetBusinessProfileQuery) (BusinessProfileView, error) {
	if err := query.Validate(); err != nil {
		return BusinessProfileView{}, err
	}

	p, err := h.business.Profile(ctx)
	if err != nil {
		return BusinessProfileView{}, err
	}

	return BusinessProfileView{
		Name:     p.Name,
		Owner:    p.Owner,
		Contact:  p.Contact,
		Address:  p.Location,
		MapLink:  p.MapLink,
		Hours:    p.Hours,
		Currency: p.CurrencyCode(),
	}, nil
}
