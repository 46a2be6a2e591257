package tasks

import (
	"context"
	"fmt"
	"time"

	"openpay-gateway/internal/domain/order"
	"openpay-gateway/internal/domain/payment"
	"openpay-gateway/internal/domain/store"
	"openpay-gateway/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const sweepWindow = 30 * 24 * time.Hour

// OrderSweepTask reconciles orders whose callback never arrived: recent
// orders paid through this gateway and still Pending or Authorized are
// re-captured. Stores are swept in parallel; orders within a store
// sequentially, so capture calls for one merchant account never race.
type OrderSweepTask struct {
	stores  store.Repo
	orders  order.Repo
	service *payment.Service
	logger  *logger.Logger
	now     func() time.Time
}

func NewOrderSweepTask(l *logger.Logger, stores store.Repo, orders order.Repo, service *payment.Service) *OrderSweepTask {
	return &OrderSweepTask{
		stores:  stores,
		orders:  orders,
		service: service,
		logger:  l,
		now:     time.Now,
	}
}

func (t *OrderSweepTask) Name() string { return "order_sweep" }

func (t *OrderSweepTask) Run(ctx context.Context) error {
	stores, err := t.stores.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load stores: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, st := range stores {
		g.Go(func() error {
			t.sweepStore(ctx, st)
			return nil
		})
	}
	return g.Wait()
}

func (t *OrderSweepTask) sweepStore(ctx context.Context, st store.Store) {
	orders, err := t.orders.Search(ctx, order.SearchQuery{
		StoreID:        st.ID,
		CreatedFromUTC: t.now().UTC().Add(-sweepWindow),
		PaymentStatuses: []order.PaymentStatus{
			order.PaymentStatusPending,
			order.PaymentStatusAuthorized,
		},
		PaymentMethod: order.PaymentMethodSystemName,
	})
	if err != nil {
		t.logger.Error("Order sweep skipped store: store=%d error=%v", st.ID, err)
		return
	}

	for _, o := range orders {
		if ctx.Err() != nil {
			return
		}

		transactionID, errs := t.service.CaptureOrderByID(ctx, o.ID)
		if len(errs) > 0 {
			t.logger.Error("Order sweep capture failed: store=%d order=%s errors=%v", st.ID, o.Number, errs)
			continue
		}
		t.logger.Info("Order sweep captured order: store=%d order=%s transaction=%s", st.ID, o.Number, transactionID)
	}
}
