package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source ports.go -destination mock_ports.go -package payment

// Cart is the checkout state relevant to eligibility checks. Total is nil
// when a definitive total cannot be computed yet (e.g. no shipping option
// selected); eligibility then falls back to the discounted subtotal.
type Cart struct {
	StoreID              int64
	Total                *decimal.Decimal
	SubTotalWithDiscount decimal.Decimal
	RequiresShipping     bool
}

// EffectiveTotal returns the best known cart total.
func (c Cart) EffectiveTotal() decimal.Decimal {
	if c.Total != nil {
		return *c.Total
	}
	return c.SubTotalWithDiscount
}

// CustomerNameSettings mirrors the storefront registration options that
// decide which customer fields may serve as name fallbacks.
type CustomerNameSettings struct {
	FirstNameEnabled bool
	LastNameEnabled  bool
	UsernamesEnabled bool
}

// RouteURLBuilder builds the absolute URLs the gateway redirects customers
// to during the online journey.
type RouteURLBuilder interface {
	CallbackURL() string
	OrderDetailsURL(orderID int64) string
	HomeURL() string
}

// EventKind classifies audit events emitted by the orchestration.
type EventKind string

const (
	EventOrderPlaced      EventKind = "order_placed"
	EventOrderCaptured    EventKind = "order_captured"
	EventOrderRefunded    EventKind = "order_refunded"
	EventCallbackRejected EventKind = "callback_rejected"
	EventLimitsSynced     EventKind = "limits_synced"
)

// Event is an audit record of a gateway interaction.
type Event struct {
	Kind           EventKind `json:"kind"`
	StoreID        int64     `json:"store_id"`
	OrderID        string    `json:"order_id,omitempty"`
	GatewayOrderID string    `json:"gateway_order_id,omitempty"`
	Detail         string    `json:"detail,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventSink records audit events. Sink failures are logged and never fail
// the payment flow.
type EventSink interface {
	Record(ctx context.Context, event Event) error
}

// NoopEventSink discards events; used when no audit backend is configured.
type NoopEventSink struct{}

func (NoopEventSink) Record(context.Context, Event) error { return nil }
