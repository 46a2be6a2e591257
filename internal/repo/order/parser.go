package order_repo

import (
	"openpay-gateway/internal/domain/order"

	"github.com/jackc/pgx/v5"
)

func parseOrderRow(row pgx.Row) (order.Order, error) {
	var m orderRow
	err := row.Scan(
		&m.ID, &m.StoreID, &m.CustomerID, &m.Number, &m.Total,
		&m.PaymentMethod, &m.PaymentStatus, &m.CaptureTransactionID,
		&m.PickupInStore, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return order.Order{}, err
	}
	return m.toDomain(), nil
}

func parseOrderRows(rows pgx.Rows) ([]order.Order, error) {
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		o, err := parseOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func parseAddressRows(rows pgx.Rows) (shipping, pickup *order.Address, err error) {
	defer rows.Close()

	for rows.Next() {
		var m addressRow
		if err := rows.Scan(
			&m.Kind, &m.FirstName, &m.LastName, &m.Line1, &m.Line2,
			&m.City, &m.County, &m.ZipPostalCode, &m.StateAbbreviation,
		); err != nil {
			return nil, nil, err
		}
		addr := m.toDomain()
		switch m.Kind {
		case addressKindShipping:
			shipping = &addr
		case addressKindPickup:
			pickup = &addr
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return shipping, pickup, nil
}

func parseItemRows(rows pgx.Rows) ([]order.Item, error) {
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var m itemRow
		if err := rows.Scan(
			&m.ProductName, &m.ProductSKU, &m.AttributesText, &m.UnitPrice, &m.Quantity,
		); err != nil {
			return nil, err
		}
		items = append(items, m.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
