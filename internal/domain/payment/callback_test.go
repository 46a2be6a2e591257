package payment

import (
	"context"
	"errors"
	"testing"

	"openpay-gateway/internal/domain/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_ProcessCallback(t *testing.T) {
	t.Parallel()

	// given
	service, m := paymentService(t)
	ctx := context.Background()
	o := placeableOrder()
	o.PaymentStatus = order.PaymentStatusPending

	m.orders.EXPECT().GetByID(ctx, int64(42)).Return(o, nil)
	// settings snapshot is validated once for the callback and once inside
	// the capture
	m.stores.EXPECT().GetByID(ctx, int64(1)).Return(auStore(), nil).Times(2)
	m.settings.EXPECT().Load(ctx, int64(1)).Return(validSettings(), nil).Times(2)
	m.factory.EXPECT().ClientFor(gomock.Any()).Return(m.api, nil).Times(2)

	m.api.EXPECT().GetOrderStatusByID(ctx, "OP-1").Return(&CustomerOrderStatus{
		Entity:      Entity{OrderID: "OP-1"},
		OrderStatus: "Pending",
		PlanStatus:  "Lodged",
	}, nil)
	m.api.EXPECT().GetOrderStatusByRetailerID(ctx, "42").Return(&CustomerOrderStatus{
		Entity:      Entity{OrderID: "OP-1"},
		OrderStatus: "Pending",
		PlanStatus:  "Lodged",
	}, nil)
	m.api.EXPECT().CaptureOrderByID(ctx, "OP-1").Return(&Entity{OrderID: "OP-1"}, nil)

	m.orders.EXPECT().SetCaptureTransactionID(ctx, int64(42), "OP-1").Return(nil)
	m.orders.EXPECT().MarkAsPaid(ctx, int64(42)).Return(nil)
	m.events.EXPECT().Record(ctx, gomock.Any()).Return(nil)

	// when
	err := service.ProcessCallback(ctx, CallbackRequest{
		OrderID:        42,
		GatewayOrderID: "OP-1",
		Status:         "Lodged",
	})

	// then
	assert.NoError(t, err)
}

func TestService_ProcessCallback_Rejections(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	testCases := []struct {
		name           string
		setup          func(m *serviceMocks, o order.Order)
		expectedReason string
	}{
		{
			name: "order not found",
			setup: func(m *serviceMocks, o order.Order) {
				m.orders.EXPECT().GetByID(ctx, int64(42)).Return(order.Order{}, order.ErrOrderNotFound)
			},
			expectedReason: "The order '42' was not found.",
		},
		{
			name: "gateway order lookup failed",
			setup: func(m *serviceMocks, o order.Order) {
				m.orders.EXPECT().GetByID(ctx, int64(42)).Return(o, nil)
				m.expectSnapshot(ctx, auStore(), validSettings())
				m.factory.EXPECT().ClientFor(gomock.Any()).Return(m.api, nil)
				m.api.EXPECT().GetOrderStatusByID(ctx, "OP-1").Return(nil, errors.New("boom"))
			},
			expectedReason: "Cannot get the OpenPay order by id 'OP-1'.",
		},
		{
			name: "reported plan status does not match the query",
			setup: func(m *serviceMocks, o order.Order) {
				m.orders.EXPECT().GetByID(ctx, int64(42)).Return(o, nil)
				m.expectSnapshot(ctx, auStore(), validSettings())
				m.factory.EXPECT().ClientFor(gomock.Any()).Return(m.api, nil)
				m.api.EXPECT().GetOrderStatusByID(ctx, "OP-1").Return(&CustomerOrderStatus{
					Entity:      Entity{OrderID: "OP-1"},
					OrderStatus: "Pending",
					PlanStatus:  "Active",
				}, nil)
			},
			expectedReason: "The OpenPay plan status 'Lodged' is invalid.",
		},
		{
			name: "gateway order no longer pending",
			setup: func(m *serviceMocks, o order.Order) {
				m.orders.EXPECT().GetByID(ctx, int64(42)).Return(o, nil)
				m.expectSnapshot(ctx, auStore(), validSettings())
				m.factory.EXPECT().ClientFor(gomock.Any()).Return(m.api, nil)
				m.api.EXPECT().GetOrderStatusByID(ctx, "OP-1").Return(&CustomerOrderStatus{
					Entity:      Entity{OrderID: "OP-1"},
					OrderStatus: "Captured",
					PlanStatus:  "Lodged",
				}, nil)
			},
			expectedReason: "The OpenPay order status 'Captured' is invalid.",
		},
		{
			name: "order already marked as paid",
			setup: func(m *serviceMocks, o order.Order) {
				o.PaymentStatus = order.PaymentStatusPaid
				m.orders.EXPECT().GetByID(ctx, int64(42)).Return(o, nil)
				m.expectSnapshot(ctx, auStore(), validSettings())
				m.factory.EXPECT().ClientFor(gomock.Any()).Return(m.api, nil)
				m.api.EXPECT().GetOrderStatusByID(ctx, "OP-1").Return(&CustomerOrderStatus{
					Entity:      Entity{OrderID: "OP-1"},
					OrderStatus: "Pending",
					PlanStatus:  "Lodged",
				}, nil)
			},
			expectedReason: "The order '42' already marked as paid.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service, m := paymentService(t)
			o := placeableOrder()
			o.PaymentStatus = order.PaymentStatusPending
			tc.setup(m, o)
			m.events.EXPECT().Record(ctx, gomock.Any()).Return(nil)

			// when
			err := service.ProcessCallback(ctx, CallbackRequest{
				OrderID:        42,
				GatewayOrderID: "OP-1",
				Status:         "Lodged",
			})

			// then
			var rejected *CallbackRejectedError
			require.ErrorAs(t, err, &rejected)
			assert.Equal(t, tc.expectedReason, rejected.Reason)
		})
	}
}

func TestService_SyncLimits(t *testing.T) {
	t.Parallel()

	// given
	service, m := paymentService(t)
	ctx := context.Background()

	m.expectSnapshot(ctx, auStore(), validSettings())
	m.factory.EXPECT().ClientFor(gomock.Any()).Return(m.api, nil)
	m.api.EXPECT().GetOrderLimits(ctx).Return(&OrderLimits{MinPrice: 5000, MaxPrice: 100000}, nil)

	var saved Settings
	m.settings.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s Settings) error {
		saved = s
		return nil
	})
	m.events.EXPECT().Record(ctx, gomock.Any()).Return(nil)

	// when
	updated, err := service.SyncLimits(ctx, 1)

	// then
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50).Equal(updated.MinOrderTotal))
	assert.True(t, decimal.NewFromInt(1000).Equal(updated.MaxOrderTotal))
	assert.True(t, saved.MinOrderTotal.Equal(updated.MinOrderTotal))
}

func TestService_SyncLimits_GatewayError(t *testing.T) {
	t.Parallel()

	// given
	service, m := paymentService(t)
	ctx := context.Background()

	m.expectSnapshot(ctx, auStore(), validSettings())
	m.factory.EXPECT().ClientFor(gomock.Any()).Return(m.api, nil)
	m.api.EXPECT().GetOrderLimits(ctx).Return(nil, &APIError{Operation: "GetOrderLimits", StatusCode: 503})

	// when
	_, err := service.SyncLimits(ctx, 1)

	// then
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
}
