package store_repo

import (
	"context"
	"errors"
	"fmt"

	"openpay-gateway/internal/domain/store"
	"openpay-gateway/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var storeColumns = []string{"id", "name", "currency_code", "base_url"}

type PgStoreRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgStoreRepo(pg *postgres.Postgres) *PgStoreRepo {
	return &PgStoreRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgStoreRepo) GetByID(ctx context.Context, id int64) (store.Store, error) {
	query, args, err := r.builder.Select(storeColumns...).
		From("stores").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return store.Store{}, fmt.Errorf("build store query: %w", err)
	}

	var s store.Store
	err = r.db.QueryRow(ctx, query, args...).Scan(&s.ID, &s.Name, &s.CurrencyCode, &s.BaseURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.Store{}, store.ErrStoreNotFound
	}
	if err != nil {
		return store.Store{}, fmt.Errorf("get store %d: %w", id, err)
	}
	return s, nil
}

func (r *PgStoreRepo) GetAll(ctx context.Context) ([]store.Store, error) {
	query, args, err := r.builder.Select(storeColumns...).
		From("stores").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stores query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stores: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var s store.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.CurrencyCode, &s.BaseURL); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stores, nil
}
