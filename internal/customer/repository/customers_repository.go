package repository

import (
	"context"
	"database/sql"
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) Insert(ctx context.Context, c domain.Customer) error {
	query := `INSERT INTO customers (id, fullName, email) VALUES (?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, c.ID.String(), c.FullName, c.Email); err != nil {
		return fmt.Errorf("inserting customer: %w", err)
	}

	return nil
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, fullName, email, createdAt FROM customers ORDER BY createdAt`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning customer row: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer rows: %w", err)
	}

	return customers, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id domain.ID) (*domain.Customer, error) {
	query := `SELECT id, fullName, email, createdAt FROM customers WHERE id = ?`

	var c domain.Customer
	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(&c.ID, &c.FullName, &c.Email, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying customer by id: %w", err)
	}

	return &c, nil
}

// FindIDsByNameSubstring resolves a case-insensitive substring match against
// customer full names to the set of matching identifiers.
func (r *MySQLRepository) FindIDsByNameSubstring(ctx context.Context, name string) ([]domain.ID, error) {
	query := `SELECT id FROM customers WHERE LOWER(fullName) LIKE CONCAT('%', LOWER(?), '%')`

	rows, err := r.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("querying customers by name: %w", err)
	}
	defer rows.Close()

	var ids []domain.ID
	for rows.Next() {
		var id domain.ID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning customer id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer ids: %w", err)
	}

	return ids, nil
}
