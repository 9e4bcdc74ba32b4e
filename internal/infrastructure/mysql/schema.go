package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables and indexes the service relies on:
// unique SKUs and emails, and the filter/sort indexes on orders.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []struct {
		name  string
		query string
	}{
		{"products", `
			CREATE TABLE IF NOT EXISTS products (
				id CHAR(36) NOT NULL PRIMARY KEY,
				sku VARCHAR(64) NOT NULL,
				name VARCHAR(255) NOT NULL,
				price DECIMAL(10,2) NOT NULL,
				stock INT NOT NULL,
				createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE KEY uq_sku (sku)
			)`},
		{"customers", `
			CREATE TABLE IF NOT EXISTS customers (
				id CHAR(36) NOT NULL PRIMARY KEY,
				fullName VARCHAR(255) NOT NULL,
				email VARCHAR(255) NOT NULL,
				createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE KEY uq_email (email),
				INDEX idx_full_name (fullName)
			)`},
		{"orders", `
			CREATE TABLE IF NOT EXISTS orders (
				id CHAR(36) NOT NULL PRIMARY KEY,
				customerId CHAR(36) NOT NULL,
				status VARCHAR(20) NOT NULL DEFAULT 'NEW',
				date DATETIME NOT NULL,
				INDEX idx_status (status),
				INDEX idx_customer (customerId),
				INDEX idx_date (date)
			)`},
		{"order_items", `
			CREATE TABLE IF NOT EXISTS order_items (
				id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
				orderId CHAR(36) NOT NULL,
				productId CHAR(36) NOT NULL,
				quantity INT NOT NULL,
				unitPrice DECIMAL(10,2) NOT NULL,
				FOREIGN KEY (orderId) REFERENCES orders(id) ON DELETE CASCADE,
				INDEX idx_order (orderId),
				INDEX idx_product (productId)
			)`},
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt.query); err != nil {
			return fmt.Errorf("creating table %s: %w", stmt.name, err)
		}
	}

	return nil
}
