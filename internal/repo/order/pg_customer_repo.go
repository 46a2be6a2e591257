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

type PgCustomerRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgCustomerRepo(pg *postgres.Postgres) *PgCustomerRepo {
	return &PgCustomerRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgCustomerRepo) GetByID(ctx context.Context, id int64) (order.Customer, error) {
	query, args, err := r.builder.Select("id", "email", "username", "first_name", "last_name").
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return order.Customer{}, fmt.Errorf("build customer query: %w", err)
	}

	var c order.Customer
	err = r.db.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Email, &c.Username, &c.FirstName, &c.LastName)
	if errors.Is(err, pgx.ErrNoRows) {
		return order.Customer{}, order.ErrCustomerNotFound
	}
	if err != nil {
		return order.Customer{}, fmt.Errorf("get customer %d: %w", id, err)
	}
	return c, nil
}
