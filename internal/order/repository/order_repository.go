package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Insert persists the order header and its line items inside the caller's
// transaction. Line items keep their input order via the auto-increment key.
func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error {
	query := `INSERT INTO orders (id, customerId, status, date) VALUES (?, ?, ?, ?)`

	if _, err := tx.ExecContext(ctx, query, order.ID.String(), order.CustomerID.String(), order.Status, order.Date); err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	itemQuery := `INSERT INTO order_items (orderId, productId, quantity, unitPrice) VALUES (?, ?, ?, ?)`
	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, itemQuery, order.ID.String(), item.ProductID.String(), item.Quantity, item.UnitPrice); err != nil {
			return fmt.Errorf("inserting order item: %w", err)
		}
	}

	return nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id domain.ID) (*domain.Order, error) {
	query := `SELECT id, customerId, status, date FROM orders WHERE id = ?`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(
		&order.ID, &order.CustomerID, &order.Status, &order.Date,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	itemQuery := `SELECT productId, quantity, unitPrice FROM order_items WHERE orderId = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, itemQuery, id.String())
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return &order, nil
}

// FindFiltered lists order headers, newest first. An empty status means no
// status filter; a nil customerIDs slice means no customer filter. Callers
// must not pass an empty non-nil slice; an empty resolved set short-circuits
// before reaching the store.
func (r *MySQLOrderRepository) FindFiltered(ctx context.Context, status string, customerIDs []domain.ID) ([]domain.Order, error) {
	query := `SELECT id, customerId, status, date FROM orders`

	var conditions []string
	var args []interface{}

	if status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, status)
	}

	if customerIDs != nil {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(customerIDs)), ", ")
		conditions = append(conditions, fmt.Sprintf("customerId IN (%s)", placeholders))
		for _, id := range customerIDs {
			args = append(args, id.String())
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.Status, &order.Date); err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

// SumQuantitiesByProduct is the group-sum leg of the sales report: total
// quantity per product across every line item of every order.
func (r *MySQLOrderRepository) SumQuantitiesByProduct(ctx context.Context) ([]domain.ProductSales, error) {
	query := `SELECT productId, SUM(quantity) FROM order_items GROUP BY productId`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("aggregating order items: %w", err)
	}
	defer rows.Close()

	var sales []domain.ProductSales
	for rows.Next() {
		var row domain.ProductSales
		if err := rows.Scan(&row.ProductID, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scanning aggregation row: %w", err)
		}
		sales = append(sales, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating aggregation rows: %w", err)
	}

	return sales, nil
}
