package order_repo

import (
	"time"

	"openpay-gateway/internal/domain/order"

	"github.com/shopspring/decimal"
)

type orderRow struct {
	ID                   int64
	StoreID              int64
	CustomerID           int64
	Number               string
	Total                decimal.Decimal
	PaymentMethod        string
	PaymentStatus        string
	CaptureTransactionID *string
	PickupInStore        bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (m orderRow) toDomain() order.Order {
	o := order.Order{
		ID:            m.ID,
		StoreID:       m.StoreID,
		CustomerID:    m.CustomerID,
		Number:        m.Number,
		Total:         m.Total,
		PaymentMethod: m.PaymentMethod,
		PaymentStatus: order.PaymentStatus(m.PaymentStatus),
		PickupInStore: m.PickupInStore,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.CaptureTransactionID != nil {
		o.CaptureTransactionID = *m.CaptureTransactionID
	}
	return o
}

const (
	addressKindShipping = "shipping"
	addressKindPickup   = "pickup"
)

type addressRow struct {
	Kind              string
	FirstName         string
	LastName          string
	Line1             string
	Line2             string
	City              string
	County            string
	ZipPostalCode     string
	StateAbbreviation string
}

func (m addressRow) toDomain() order.Address {
	return order.Address{
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Line1:             m.Line1,
		Line2:             m.Line2,
		City:              m.City,
		County:            m.County,
		ZipPostalCode:     m.ZipPostalCode,
		StateAbbreviation: m.StateAbbreviation,
	}
}

type itemRow struct {
	ProductName    string
	ProductSKU     string
	AttributesText string
	UnitPrice      decimal.Decimal
	Quantity       int
}

func (m itemRow) toDomain() order.Item {
	return order.Item{
		ProductName:    m.ProductName,
		ProductSKU:     m.ProductSKU,
		AttributesText: m.AttributesText,
		UnitPrice:      m.UnitPrice,
		Quantity:       m.Quantity,
	}
}
