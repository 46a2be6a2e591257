package order_repo

import (
	"context"
	"errors"
	"fmt"

	"openpay-gateway/internal/domain/order"
	"openpay-gateway/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "store_id", "customer_id", "number", "total",
	"payment_method", "payment_status", "capture_transaction_id",
	"pickup_in_store", "created_at", "updated_at",
}

// PgOrderRepo reads orders placed through the storefront and records the
// gateway-side payment progress on them.
type PgOrderRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgOrderRepo(pg *postgres.Postgres) *PgOrderRepo {
	return &PgOrderRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgOrderRepo) GetByID(ctx context.Context, id int64) (order.Order, error) {
	query, args, err := r.builder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("build order query: %w", err)
	}

	o, err := parseOrderRow(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return order.Order{}, order.ErrOrderNotFound
	}
	if err != nil {
		return order.Order{}, fmt.Errorf("get order %d: %w", id, err)
	}

	if err := r.loadAddresses(ctx, &o); err != nil {
		return order.Order{}, fmt.Errorf("load addresses for order %d: %w", id, err)
	}
	if err := r.loadItems(ctx, &o); err != nil {
		return order.Order{}, fmt.Errorf("load items for order %d: %w", id, err)
	}
	return o, nil
}

// Search returns order headers only; addresses and items are loaded on
// GetByID where the full order is needed.
func (r *PgOrderRepo) Search(ctx context.Context, q order.SearchQuery) ([]order.Order, error) {
	query := r.builder.Select(orderColumns...).
		From("orders").
		OrderBy("created_at ASC")

	if q.StoreID != 0 {
		query = query.Where(squirrel.Eq{"store_id": q.StoreID})
	}
	if !q.CreatedFromUTC.IsZero() {
		query = query.Where(squirrel.GtOrEq{"created_at": q.CreatedFromUTC})
	}
	if len(q.PaymentStatuses) > 0 {
		query = query.Where(squirrel.Eq{"payment_status": q.PaymentStatuses})
	}
	if q.PaymentMethod != "" {
		query = query.Where(squirrel.Eq{"payment_method": q.PaymentMethod})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build orders search: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}
	return parseOrderRows(rows)
}

func (r *PgOrderRepo) SetCaptureTransactionID(ctx context.Context, orderID int64, transactionID string) error {
	query, args, err := r.builder.Update("orders").
		Set("capture_transaction_id", transactionID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build capture transaction update: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("set capture transaction for order %d: %w", orderID, err)
	}
	return nil
}

func (r *PgOrderRepo) MarkAsPaid(ctx context.Context, orderID int64) error {
	query, args, err := r.builder.Update("orders").
		Set("payment_status", string(order.PaymentStatusPaid)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark as paid update: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("mark order %d as paid: %w", orderID, err)
	}
	return nil
}

func (r *PgOrderRepo) loadAddresses(ctx context.Context, o *order.Order) error {
	query, args, err := r.builder.Select(
		"kind", "first_name", "last_name", "line1", "line2",
		"city", "county", "zip_postal_code", "state_abbreviation",
	).
		From("order_addresses").
		Where(squirrel.Eq{"order_id": o.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build addresses query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	o.ShippingAddress, o.PickupAddress, err = parseAddressRows(rows)
	return err
}

func (r *PgOrderRepo) loadItems(ctx context.Context, o *order.Order) error {
	query, args, err := r.builder.Select(
		"product_name", "product_sku", "attributes_text", "unit_price", "quantity",
	).
		From("order_items").
		Where(squirrel.Eq{"order_id": o.ID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("build items query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	o.Items, err = parseItemRows(rows)
	return err
}
