package order

import (
	"context"
	"time"
)

//go:generate mockgen -source repo_port.go -destination mock_repo.go -package order

// SearchQuery filters orders for the reconciliation sweep.
type SearchQuery struct {
	StoreID         int64
	CreatedFromUTC  time.Time
	PaymentStatuses []PaymentStatus
	PaymentMethod   string
}

type Repo interface {
	GetByID(ctx context.Context, id int64) (Order, error)
	Search(ctx context.Context, query SearchQuery) ([]Order, error)
	SetCaptureTransactionID(ctx context.Context, orderID int64, transactionID string) error
	MarkAsPaid(ctx context.Context, orderID int64) error
}

type CustomerRepo interface {
	GetByID(ctx context.Context, id int64) (Customer, error)
}
