package tasks

import (
	"context"
	"fmt"

	"openpay-gateway/internal/domain/payment"
	"openpay-gateway/internal/domain/store"
	"openpay-gateway/pkg/logger"
)

// LimitsSyncTask refreshes the gateway order total limits for every store.
// A store with broken configuration is logged and skipped; the loop always
// visits every store.
type LimitsSyncTask struct {
	stores  store.Repo
	service *payment.Service
	logger  *logger.Logger
}

func NewLimitsSyncTask(l *logger.Logger, stores store.Repo, service *payment.Service) *LimitsSyncTask {
	return &LimitsSyncTask{
		stores:  stores,
		service: service,
		logger:  l,
	}
}

func (t *LimitsSyncTask) Name() string { return "limits_sync" }

func (t *LimitsSyncTask) Run(ctx context.Context) error {
	stores, err := t.stores.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load stores: %w", err)
	}

	for _, st := range stores {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		settings, err := t.service.SyncLimits(ctx, st.ID)
		if err != nil {
			t.logger.Error("Limits sync skipped store: store=%d error=%v", st.ID, err)
			continue
		}
		t.logger.Info("Limits synced: store=%d min=%s max=%s",
			st.ID, settings.MinOrderTotal, settings.MaxOrderTotal)
	}
	return nil
}
