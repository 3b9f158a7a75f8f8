// Package queries contains read-only operations over orders and reference data.
// Query handlers never open a unit of work; they read committed state only.
package queries

import (
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// OrderView is the read model of an order. Timestamps are RFC3339 in UTC;
// an empty string means the step has not happened yet.
type OrderView struct {
	ID             string              `json:"order_id"`
	VendorID       string              `json:"vendor_id"`
	CustomerName   string              `json:"customer_name"`
	CustomerPhone  string              `json:"customer_phone"`
	Address        string              `json:"address"`
	Items          []OrderItemView     `json:"items"`
	Instructions   string              `json:"special_instructions,omitempty"`
	Total          float64             `json:"total"`
	Status         string              `json:"status"`
	PaymentStatus  string              `json:"payment_status"`
	PaymentRequest *PaymentRequestView `json:"payment_request,omitempty"`
	AssignedAgent  string              `json:"assigned_agent,omitempty"`
	CreatedAt      string              `json:"created_at"`
	AcceptedAt     string              `json:"accepted_at,omitempty"`
	ReadyAt        string              `json:"ready_at,omitempty"`
	AssignedAt     string              `json:"assigned_at,omitempty"`
	DeliveredAt    string              `json:"delivered_at,omitempty"`
	PaidAt         string              `json:"paid_at,omitempty"`
}

type OrderItemView struct {
	SKU      string  `json:"sku"`
	Quantity float64 `json:"quantity"`
}

type PaymentRequestView struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// NewOrderView maps an order aggregate to its read model.
func NewOrderView(o *order.Order) OrderView {
	items := o.Items()
	view := OrderView{
		ID:            o.ID().String(),
		VendorID:      o.VendorID(),
		CustomerName:  o.Customer().Name(),
		CustomerPhone: o.Customer().Phone(),
		Address:       o.Address(),
		Items:         make([]OrderItemView, 0, len(items)),
		Instructions:  o.Instructions(),
		Total:         o.Total(),
		Status:        o.Status().String(),
		PaymentStatus: o.PaymentStatus().String(),
	}

	for _, item := range items {
		view.Items = append(view.Items, OrderItemView{SKU: item.SKU(), Quantity: item.Quantity()})
	}

	if pr, ok := o.PaymentRequest(); ok {
		view.PaymentRequest = &PaymentRequestView{Amount: pr.Amount(), Currency: pr.Currency()}
	}
	if agentID, ok := o.AssignedAgent(); ok {
		view.AssignedAgent = agentID
	}

	tl := o.Timeline()
	view.CreatedAt = tl.CreatedAt().UTC().Format(time.RFC3339)
	view.AcceptedAt = formatStamp(tl.AcceptedAt())
	view.ReadyAt = formatStamp(tl.ReadyAt())
	view.AssignedAt = formatStamp(tl.AssignedAt())
	view.DeliveredAt = formatStamp(tl.DeliveredAt())
	view.PaidAt = formatStamp(tl.PaidAt())

	return view
}

func formatStamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
