package store

import (
	"context"
	"errors"
)

var ErrStoreNotFound = errors.New("store not found")

//go:generate mockgen -source store.go -destination mock_store.go -package store

// Store is a configured storefront. Each store carries its own gateway
// settings and primary currency.
type Store struct {
	ID           int64
	Name         string
	CurrencyCode string
	BaseURL      string
}

type Repo interface {
	GetByID(ctx context.Context, id int64) (Store, error)
	GetAll(ctx context.Context) ([]Store, error)
}
