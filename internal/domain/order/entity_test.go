package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_CanBeMarkedAsPaid(t *testing.T) {
	t.Parallel()

	assert.True(t, PaymentStatusPending.CanBeMarkedAsPaid())
	assert.True(t, PaymentStatusAuthorized.CanBeMarkedAsPaid())
	assert.False(t, PaymentStatusPaid.CanBeMarkedAsPaid())
	assert.False(t, PaymentStatusRefunded.CanBeMarkedAsPaid())
	assert.False(t, PaymentStatusPartiallyRefunded.CanBeMarkedAsPaid())
	assert.False(t, PaymentStatusVoided.CanBeMarkedAsPaid())
}

func TestOrder_DeliveryAddress(t *testing.T) {
	t.Parallel()

	shipping := &Address{Line1: "1 Collins St"}
	pickup := &Address{Line1: "5 Warehouse Rd"}

	o := Order{ShippingAddress: shipping, PickupAddress: pickup}
	assert.Same(t, shipping, o.DeliveryAddress())

	o.PickupInStore = true
	assert.Same(t, pickup, o.DeliveryAddress())
}

func TestOrder_CanRePostProcessPayment(t *testing.T) {
	t.Parallel()

	now := time.Now()
	o := Order{CreatedAt: now}

	assert.False(t, o.CanRePostProcessPayment(now))
	assert.False(t, o.CanRePostProcessPayment(now.Add(4*time.Second)))
	assert.True(t, o.CanRePostProcessPayment(now.Add(5*time.Second)))
	assert.True(t, o.CanRePostProcessPayment(now.Add(time.Minute)))
}

func TestItem_Charge(t *testing.T) {
	t.Parallel()

	item := Item{UnitPrice: decimal.RequireFromString("74.95"), Quantity: 2}
	assert.True(t, decimal.RequireFromString("149.90").Equal(item.Charge()))
}
