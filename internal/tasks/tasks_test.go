package tasks

import (
	"context"
	"testing"
	"time"

	"openpay-gateway/internal/domain/order"
	"openpay-gateway/internal/domain/payment"
	"openpay-gateway/internal/domain/store"
	"openpay-gateway/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type taskFixture struct {
	settings *payment.MockSettingsRepo
	stores   *store.MockRepo
	orders   *order.MockRepo
	factory  *payment.MockAPIFactory
	api      *payment.MockAPI
	service  *payment.Service
	logger   *logger.Logger
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &taskFixture{
		settings: payment.NewMockSettingsRepo(ctrl),
		stores:   store.NewMockRepo(ctrl),
		orders:   order.NewMockRepo(ctrl),
		factory:  payment.NewMockAPIFactory(ctrl),
		api:      payment.NewMockAPI(ctrl),
		logger:   logger.New("error"),
	}
	f.service = payment.NewService(
		f.settings, f.stores, f.orders, order.NewMockCustomerRepo(ctrl),
		f.factory, stubRoutes{}, payment.CustomerNameSettings{}, nil, f.logger,
	)
	return f
}

type stubRoutes struct{}

func (stubRoutes) CallbackURL() string                  { return "https://pay.example.com/openpay/callback/success" }
func (stubRoutes) OrderDetailsURL(orderID int64) string { return "https://shop.example.com/orderdetails" }
func (stubRoutes) HomeURL() string                      { return "https://shop.example.com/" }

func taskSettings(storeID int64) payment.Settings {
	s := payment.DefaultSettings(storeID)
	s.APIToken = "merchant|s3cret"
	s.RegionTwoLetterISOCode = "AU"
	s.MinOrderTotal = decimal.NewFromInt(50)
	s.MaxOrderTotal = decimal.NewFromInt(1000)
	return s
}

func auStore(id int64) store.Store {
	return store.Store{ID: id, Name: "Store", CurrencyCode: "AUD"}
}

func TestLimitsSyncTask_ContinuesPastBrokenStore(t *testing.T) {
	t.Parallel()

	// given
	f := newTaskFixture(t)
	ctx := context.Background()

	f.stores.EXPECT().GetAll(ctx).Return([]store.Store{auStore(1), auStore(2)}, nil)

	// store 1: configuration incomplete, sync rejected
	broken := taskSettings(1)
	broken.APIToken = ""
	f.stores.EXPECT().GetByID(ctx, int64(1)).Return(auStore(1), nil)
	f.settings.EXPECT().Load(ctx, int64(1)).Return(broken, nil)

	// store 2: limits pulled and persisted
	f.stores.EXPECT().GetByID(ctx, int64(2)).Return(auStore(2), nil)
	f.settings.EXPECT().Load(ctx, int64(2)).Return(taskSettings(2), nil)
	f.factory.EXPECT().ClientFor(gomock.Any()).Return(f.api, nil)
	f.api.EXPECT().GetOrderLimits(ctx).Return(&payment.OrderLimits{MinPrice: 5000, MaxPrice: 100000}, nil)
	var saved payment.Settings
	f.settings.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s payment.Settings) error {
		saved = s
		return nil
	})

	task := NewLimitsSyncTask(f.logger, f.stores, f.service)

	// when
	err := task.Run(ctx)

	// then
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.StoreID)
	assert.True(t, decimal.NewFromInt(50).Equal(saved.MinOrderTotal))
	assert.True(t, decimal.NewFromInt(1000).Equal(saved.MaxOrderTotal))
}

func TestOrderSweepTask_CapturesPendingOrders(t *testing.T) {
	t.Parallel()

	// given
	f := newTaskFixture(t)
	ctx := context.Background()
	now := time.Now()

	f.stores.EXPECT().GetAll(ctx).Return([]store.Store{auStore(1)}, nil)

	stale := order.Order{
		ID: 10, StoreID: 1, Number: "10",
		PaymentStatus: order.PaymentStatusPending,
		Total:         decimal.NewFromInt(100),
		CreatedAt:     now.Add(-48 * time.Hour),
	}
	abandoned := order.Order{
		ID: 11, StoreID: 1, Number: "11",
		PaymentStatus: order.PaymentStatusPending,
		Total:         decimal.NewFromInt(200),
		CreatedAt:     now.Add(-24 * time.Hour),
	}

	f.orders.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q order.SearchQuery) ([]order.Order, error) {
			assert.Equal(t, int64(1), q.StoreID)
			assert.Equal(t, order.PaymentMethodSystemName, q.PaymentMethod)
			assert.WithinDuration(t, now.Add(-sweepWindow), q.CreatedFromUTC, time.Minute)
			return []order.Order{stale, abandoned}, nil
		})

	// both orders reload before capture
	f.orders.EXPECT().GetByID(gomock.Any(), int64(10)).Return(stale, nil)
	f.orders.EXPECT().GetByID(gomock.Any(), int64(11)).Return(abandoned, nil)
	f.stores.EXPECT().GetByID(gomock.Any(), int64(1)).Return(auStore(1), nil).AnyTimes()
	f.settings.EXPECT().Load(gomock.Any(), int64(1)).Return(taskSettings(1), nil).AnyTimes()
	f.factory.EXPECT().ClientFor(gomock.Any()).Return(f.api, nil).AnyTimes()

	// first order was never lodged, capture refused; sweep continues
	f.api.EXPECT().GetOrderStatusByRetailerID(gomock.Any(), "10").Return(&payment.CustomerOrderStatus{
		Entity:      payment.Entity{OrderID: "OP-10"},
		OrderStatus: "Cancelled",
		PlanStatus:  "Expired",
	}, nil)

	// second order captures and settles
	f.api.EXPECT().GetOrderStatusByRetailerID(gomock.Any(), "11").Return(&payment.CustomerOrderStatus{
		Entity:      payment.Entity{OrderID: "OP-11"},
		OrderStatus: "Pending",
		PlanStatus:  "Lodged",
	}, nil)
	f.api.EXPECT().CaptureOrderByID(gomock.Any(), "OP-11").Return(&payment.Entity{OrderID: "OP-11"}, nil)
	f.orders.EXPECT().SetCaptureTransactionID(gomock.Any(), int64(11), "OP-11").Return(nil)
	f.orders.EXPECT().MarkAsPaid(gomock.Any(), int64(11)).Return(nil)

	task := NewOrderSweepTask(f.logger, f.stores, f.orders, f.service)

	// when
	err := task.Run(ctx)

	// then
	require.NoError(t, err)
}

type countingTask struct {
	name string
	runs int
}

func (t *countingTask) Name() string              { return t.name }
func (t *countingTask) Run(context.Context) error { t.runs++; return nil }

func TestScheduler_RunsTasksOnStartAndTick(t *testing.T) {
	t.Parallel()

	task := &countingTask{name: "counting"}
	scheduler := NewScheduler(logger.New("error"), 20*time.Millisecond, task)

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	scheduler.Start(ctx)

	// one run at start plus at least two ticks
	assert.GreaterOrEqual(t, task.runs, 3)
}
