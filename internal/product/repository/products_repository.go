package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) Insert(ctx context.Context, p domain.Product) error {
	query := `INSERT INTO products (id, sku, name, price, stock) VALUES (?, ?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, p.ID.String(), p.SKU, p.Name, p.Price, p.Stock); err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}

	return nil
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, sku, name, price, stock, createdAt FROM products ORDER BY createdAt`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *MySQLRepository) FindByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	query := `SELECT id, sku, name, price, stock, createdAt FROM products WHERE id = ?`

	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Price, &p.Stock, &p.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return &p, nil
}

// FindByIDs resolves a batch of references in a single query. Missing ids
// are simply absent from the result; callers decide how to treat them.
func (r *MySQLRepository) FindByIDs(ctx context.Context, ids []domain.ID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(
		`SELECT id, sku, name, price, stock, createdAt FROM products WHERE id IN (%s)`,
		placeholders(len(ids)),
	)

	rows, err := r.db.QueryContext(ctx, query, idArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// FindByIDsForUpdate is the in-transaction variant used by order placement.
// Rows stay locked until the transaction ends.
func (r *MySQLRepository) FindByIDsForUpdate(ctx context.Context, tx *sql.Tx, ids []domain.ID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(
		`SELECT id, sku, name, price, stock, createdAt FROM products WHERE id IN (%s) FOR UPDATE`,
		placeholders(len(ids)),
	)

	rows, err := tx.QueryContext(ctx, query, idArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("querying products for update: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// DecrementStock applies an isolated conditional decrement. It never drives
// stock negative: zero rows affected means the remaining stock was short.
func (r *MySQLRepository) DecrementStock(ctx context.Context, tx *sql.Tx, id domain.ID, quantity int) error {
	query := `UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?`

	result, err := tx.ExecContext(ctx, query, quantity, id.String(), quantity)
	if err != nil {
		return fmt.Errorf("decrementing stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		var available int
		err := tx.QueryRowContext(ctx, `SELECT stock FROM products WHERE id = ?`, id.String()).Scan(&available)
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
		}
		if err != nil {
			return fmt.Errorf("querying stock after failed decrement: %w", err)
		}
		return errors.NewInsufficientStockError(id.String(), quantity, available)
	}

	return nil
}

func scanProducts(rows *sql.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func idArgs(ids []domain.ID) []interface{} {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id.String()
	}
	return args
}
