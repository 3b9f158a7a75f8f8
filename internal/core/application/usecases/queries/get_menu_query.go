package queries

import (
	"context"
	"errors"
	"strings"

	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery returns the menu, or only the items whose name or SKU contains Search.
type GetMenuQuery struct {
	search string
	guard  guard.ConstructorGuard
}

func NewGetMenuQuery(search string) GetMenuQuery {
	return GetMenuQuery{search: strings.TrimSpace(search), guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

type MenuItemView struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"item"`
	Price     float64 `json:"price"`
	Unit      string  `json:"unit"`
	Available bool    `json:"available"`
}

type MenuView struct {
	Business string         `json:"business"`
	Contact  string         `json:"contact"`
	Currency string         `json:"currency"`
	Items    []MenuItemView `json:"menu"`
}

type GetMenuQueryHandler struct {
	catalog  ports.Catalog
	business ports.BusinessDirectory
}

func NewGetMenuQueryHandler(catalog ports.Catalog, business ports.BusinessDirectory) GetMenuQueryHandler {
	return GetMenuQueryHandler{catalog: catalog, business: business}
}

// Handle returns *errs.ObjectNotFoundError when a search matches nothing.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (MenuView, error) {
	if err := query.Validate(); err != nil {
		return MenuView{}, err
	}

	profile, err := h.business.Profile(ctx)
	if err != nil {
		return MenuView{}, err
	}

	items, err := h.catalog.ListAll(ctx)
	if err != nil {
		return MenuView{}, err
	}

	view := MenuView{
		Business: profile.Name,
		Contact:  profile.Contact,
		Currency: profile.CurrencyCode(),
		Items:    make([]MenuItemView, 0, len(items)),
	}
	for _, item := range items {
		if query.search != "" && !item.Matches(query.search) {
			continue
		}
		view.Items = append(view.Items, MenuItemView{
			SKU:       item.SKU(),
			Name:      item.Name(),
			Price:     item.Price(),
			Unit:      item.Unit(),
			Available: item.Available(),
		})
	}

	if query.search != "" && len(view.Items) == 0 {
		return MenuView{}, errs.NewObjectNotFoundError("menu item", query.search)
	}

	return view, nil
}
