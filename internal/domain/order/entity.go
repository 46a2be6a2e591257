package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethodSystemName identifies orders paid through this gateway.
const PaymentMethodSystemName = "Payments.OpenPay"

type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "Pending"
	PaymentStatusAuthorized        PaymentStatus = "Authorized"
	PaymentStatusPaid              PaymentStatus = "Paid"
	PaymentStatusPartiallyRefunded PaymentStatus = "PartiallyRefunded"
	PaymentStatusRefunded          PaymentStatus = "Refunded"
	PaymentStatusVoided            PaymentStatus = "Voided"
)

// CanBeMarkedAsPaid reports whether the payment state machine permits the
// transition to Paid.
func (s PaymentStatus) CanBeMarkedAsPaid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusAuthorized:
		return true
	default:
		return false
	}
}

// Address is a shipping or pickup address. StateAbbreviation is empty when
// the address has no resolvable state or province.
type Address struct {
	FirstName         string
	LastName          string
	Line1             string
	Line2             string
	City              string
	County            string
	ZipPostalCode     string
	StateAbbreviation string
}

// Item is a single order line.
type Item struct {
	ProductName    string
	ProductSKU     string
	AttributesText string
	UnitPrice      decimal.Decimal
	Quantity       int
}

// Charge is the line total in major units.
func (i Item) Charge() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Customer is the order owner. Name attributes may be absent depending on
// the storefront registration settings.
type Customer struct {
	ID        int64
	Email     string
	Username  string
	FirstName string
	LastName  string
}

type Order struct {
	ID                   int64
	StoreID              int64
	CustomerID           int64
	Number               string // retailer order number
	Total                decimal.Decimal
	PaymentMethod        string
	PaymentStatus        PaymentStatus
	CaptureTransactionID string
	PickupInStore        bool
	ShippingAddress      *Address
	PickupAddress        *Address
	Items                []Item
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// DeliveryAddress returns the address the gateway should see: the pickup
// address for in-store pickup, the shipping address otherwise. Nil when the
// order has no usable address.
func (o Order) DeliveryAddress() *Address {
	if o.PickupInStore {
		return o.PickupAddress
	}
	return o.ShippingAddress
}

// CanRePostProcessPayment reports whether the customer may retry the
// redirect flow. A short grace period avoids double-submits right after
// order placement.
func (o Order) CanRePostProcessPayment(now time.Time) bool {
	return now.Sub(o.CreatedAt) >= 5*time.Second
}
