package mcp

import (
	"context"
	"fmt"

	"orderdesk/internal/core/application/usecases/queries"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const exampleOrder = "/order 1kg surmai, 2 prawns - Name: John, Contact: +919876543210, Notes: Clean and cut"

var helpCommands = []string{
	"/menu - show the menu",
	"/order [items] - place an order",
	"/location - shop address and hours",
	"/help - show this help",
}

type ValidateInput struct{}

type ValidateResult struct {
	Identity string `json:"identity" jsonschema:"identity the server acts as"`
}

type GetMenuInput struct {
	Search string `json:"search,omitempty" jsonschema:"optional case-insensitive filter on item name or sku"`
}

type MenuResult struct {
	OK       bool                   `json:"ok" jsonschema:"whether the lookup succeeded"`
	Business string                 `json:"business,omitempty" jsonschema:"business name"`
	Contact  string                 `json:"contact,omitempty" jsonschema:"business contact number"`
	Currency string                 `json:"currency,omitempty" jsonschema:"ISO 4217 currency of prices"`
	Items    []queries.MenuItemView `json:"menu,omitempty" jsonschema:"menu items in menu order"`
	Error    string                 `json:"error,omitempty" jsonschema:"error code when ok is false"`
	Reason   string                 `json:"reason,omitempty" jsonschema:"error detail when ok is false"`
}

type GetLocationInput struct{}

type ShowHelpInput struct{}

type HelpResult struct {
	Business     string   `json:"business" jsonschema:"business name"`
	Commands     []string `json:"commands" jsonschema:"commands customers can send"`
	ExampleOrder string   `json:"example_order" jsonschema:"a complete order message"`
}

func validateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "validate",
		Description: "Return the identity this server acts as; used by clients to verify the connection",
	}
}

func getMenuTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_menu",
		Description: "List the menu with prices and availability, optionally filtered by a search term",
	}
}

func getLocationTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_location",
		Description: "Get the shop address, map link, contact and opening hours",
	}
}

func showHelpTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "show_help",
		Description: "Show the commands customers can use and an example order",
	}
}

func (s *Server) validateHandler() mcp.ToolHandlerFor[ValidateInput, ValidateResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ValidateInput) (*mcp.CallToolResult, ValidateResult, error) {
		result := &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: s.opts.CallerIdentity}},
		}
		return result, ValidateResult{Identity: s.opts.CallerIdentity}, nil
	}
}

func (s *Server) getMenuHandler() mcp.ToolHandlerFor[GetMenuInput, MenuResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetMenuInput) (*mcp.CallToolResult, MenuResult, error) {
		view, err := s.handlers.GetMenu.Handle(ctx, queries.NewGetMenuQuery(input.Search))
		if err != nil {
			code, reason := failure(s.logger, "get_menu", err)
			return nil, MenuResult{Error: code, Reason: reason}, nil
		}

		return nil, MenuResult{
			OK:       true,
			Business: view.Business,
			Contact:  view.Contact,
			Currency: view.Currency,
			Items:    view.Items,
		}, nil
	}
}

func (s *Server) getLocationHandler() mcp.ToolHandlerFor[GetLocationInput, queries.BusinessProfileView] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GetLocationInput) (*mcp.CallToolResult, queries.BusinessProfileView, error) {
		view, err := s.handlers.GetBusinessProfile.Handle(ctx, queries.NewGetBusinessProfileQuery())
		if err != nil {
			return nil, queries.BusinessProfileView{}, fmt.Errorf("get location: %w", err)
		}
		return nil, view, nil
	}
}

func (s *Server) showHelpHandler() mcp.ToolHandlerFor[ShowHelpInput, HelpResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ShowHelpInput) (*mcp.CallToolResult, HelpResult, error) {
		profile, err := s.handlers.GetBusinessProfile.Handle(ctx, queries.NewGetBusinessProfileQuery())
		if err != nil {
			return nil, HelpResult{}, fmt.Errorf("show help: %w", err)
		}

		commands := make([]string, len(helpCommands))
		copy(commands, helpCommands)
		return nil, HelpResult{
			Business:     profile.Name,
			Commands:     commands,
			ExampleOrder: exampleOrder,
		}, nil
	}
}
