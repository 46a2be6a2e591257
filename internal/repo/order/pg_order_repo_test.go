package order_repo

import (
	"context"
	"testing"
	"time"

	"openpay-gateway/internal/domain/order"
	"openpay-gateway/pkg/pointers"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderRepo(t *testing.T) (*PgOrderRepo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := &PgOrderRepo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	return repo, mock
}

func orderRows(mock pgxmock.PgxPoolIface) *pgxmock.Rows {
	return mock.NewRows(orderColumns)
}

func TestGetByID(t *testing.T) {
	repo, mock := orderRepo(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("should assemble order with addresses and items", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM orders WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(orderRows(mock).AddRow(
				int64(42), int64(1), int64(7), "42", decimal.RequireFromString("149.90"),
				"Payments.OpenPay", "Pending", pointers.Ptr("OP-1"), false, now, now,
			))
		mock.ExpectQuery(`SELECT .+ FROM order_addresses WHERE order_id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(mock.NewRows([]string{
				"kind", "first_name", "last_name", "line1", "line2",
				"city", "county", "zip_postal_code", "state_abbreviation",
			}).AddRow("shipping", "Jane", "Citizen", "1 Collins St", "", "Melbourne", "", "3000", "VIC"))
		mock.ExpectQuery(`SELECT .+ FROM order_items WHERE order_id = \$1 ORDER BY id ASC`).
			WithArgs(int64(42)).
			WillReturnRows(mock.NewRows([]string{
				"product_name", "product_sku", "attributes_text", "unit_price", "quantity",
			}).AddRow("Sneakers", "SNK-1", "Size: 42", decimal.RequireFromString("74.95"), 2))

		o, err := repo.GetByID(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), o.ID)
		assert.Equal(t, "OP-1", o.CaptureTransactionID)
		assert.Equal(t, order.PaymentStatusPending, o.PaymentStatus)
		require.NotNil(t, o.ShippingAddress)
		assert.Equal(t, "VIC", o.ShippingAddress.StateAbbreviation)
		assert.Nil(t, o.PickupAddress)
		require.Len(t, o.Items, 1)
		assert.Equal(t, "Sneakers", o.Items[0].ProductName)
	})

	t.Run("should return ErrOrderNotFound for missing order", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM orders WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(orderRows(mock))

		_, err := repo.GetByID(ctx, 99)

		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

func TestSearch(t *testing.T) {
	repo, mock := orderRepo(t)
	ctx := context.Background()
	now := time.Now()
	from := now.Add(-30 * 24 * time.Hour)

	mock.ExpectQuery(`SELECT .+ FROM orders WHERE store_id = \$1 AND created_at >= \$2 AND payment_status IN \(\$3,\$4\) AND payment_method = \$5 ORDER BY created_at ASC`).
		WithArgs(int64(1), from, order.PaymentStatusPending, order.PaymentStatusAuthorized, "Payments.OpenPay").
		WillReturnRows(orderRows(mock).
			AddRow(int64(1), int64(1), int64(7), "1", decimal.NewFromInt(100),
				"Payments.OpenPay", "Pending", (*string)(nil), false, now, now).
			AddRow(int64(2), int64(1), int64(8), "2", decimal.NewFromInt(200),
				"Payments.OpenPay", "Authorized", (*string)(nil), false, now, now))

	result, err := repo.Search(ctx, order.SearchQuery{
		StoreID:        1,
		CreatedFromUTC: from,
		PaymentStatuses: []order.PaymentStatus{
			order.PaymentStatusPending,
			order.PaymentStatusAuthorized,
		},
		PaymentMethod: "Payments.OpenPay",
	})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Empty(t, result[0].CaptureTransactionID)
	assert.Equal(t, order.PaymentStatusAuthorized, result[1].PaymentStatus)
}

func TestSetCaptureTransactionID(t *testing.T) {
	repo, mock := orderRepo(t)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE orders SET capture_transaction_id = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs("OP-1", int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetCaptureTransactionID(ctx, 42, "OP-1")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAsPaid(t *testing.T) {
	repo, mock := orderRepo(t)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE orders SET payment_status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs("Paid", int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.MarkAsPaid(ctx, 42)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgCustomerRepo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should return customer", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, email, username, first_name, last_name FROM customers WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(mock.NewRows([]string{"id", "email", "username", "first_name", "last_name"}).
				AddRow(int64(7), "jane@example.com", "jane42", "Jane", "Citizen"))

		c, err := repo.GetByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", c.Email)
	})

	t.Run("should return ErrCustomerNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, email, username, first_name, last_name FROM customers WHERE id = \$1`).
			WithArgs(int64(8)).
			WillReturnRows(mock.NewRows([]string{"id", "email", "username", "first_name", "last_name"}))

		_, err := repo.GetByID(ctx, 8)

		assert.ErrorIs(t, err, order.ErrCustomerNotFound)
	})
}
