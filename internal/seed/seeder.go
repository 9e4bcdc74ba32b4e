package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"backoffice/internal/domain"
)

// Handler wipes the database and loads a small fixture set. Development
// convenience only; the router exposes it under /dev.
type Handler struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewHandler(db *sql.DB, logger *zap.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

func (h *Handler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	if err := h.seed(r.Context()); err != nil {
		h.logger.Error("seeding failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) seed(ctx context.Context) error {
	// order_items goes first because of the foreign key.
	for _, table := range []string{"order_items", "orders", "customers", "products"} {
		if _, err := h.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing table %s: %w", table, err)
		}
	}

	products := []domain.Product{
		{ID: domain.NewID(), SKU: "SKU-001", Name: "Mug", Price: 9.99, Stock: 100},
		{ID: domain.NewID(), SKU: "SKU-002", Name: "T-Shirt", Price: 19.90, Stock: 50},
		{ID: domain.NewID(), SKU: "SKU-003", Name: "Backpack", Price: 49.00, Stock: 30},
	}
	for _, p := range products {
		_, err := h.db.ExecContext(ctx,
			`INSERT INTO products (id, sku, name, price, stock) VALUES (?, ?, ?, ?, ?)`,
			p.ID.String(), p.SKU, p.Name, p.Price, p.Stock,
		)
		if err != nil {
			return fmt.Errorf("seeding product %s: %w", p.SKU, err)
		}
	}

	customers := []domain.Customer{
		{ID: domain.NewID(), FullName: "Ivan Petrov", Email: "ivan@example.com"},
		{ID: domain.NewID(), FullName: "Maria Sidorova", Email: "maria@example.com"},
	}
	for _, c := range customers {
		_, err := h.db.ExecContext(ctx,
			`INSERT INTO customers (id, fullName, email) VALUES (?, ?, ?)`,
			c.ID.String(), c.FullName, c.Email,
		)
		if err != nil {
			return fmt.Errorf("seeding customer %s: %w", c.Email, err)
		}
	}

	now := time.Now().UTC()
	orders := []domain.Order{
		{
			ID:         domain.NewID(),
			CustomerID: customers[0].ID,
			Status:     domain.OrderStatusNew,
			Date:       now,
			Items: []domain.OrderItem{
				{ProductID: products[0].ID, Quantity: 2, UnitPrice: 9.99},
				{ProductID: products[1].ID, Quantity: 1, UnitPrice: 19.90},
			},
		},
		{
			ID:         domain.NewID(),
			CustomerID: customers[1].ID,
			Status:     domain.OrderStatusPaid,
			Date:       now,
			Items: []domain.OrderItem{
				{ProductID: products[2].ID, Quantity: 1, UnitPrice: 49.00},
			},
		},
	}
	for _, o := range orders {
		_, err := h.db.ExecContext(ctx,
			`INSERT INTO orders (id, customerId, status, date) VALUES (?, ?, ?, ?)`,
			o.ID.String(), o.CustomerID.String(), o.Status, o.Date,
		)
		if err != nil {
			return fmt.Errorf("seeding order: %w", err)
		}
		for _, item := range o.Items {
			_, err := h.db.ExecContext(ctx,
				`INSERT INTO order_items (orderId, productId, quantity, unitPrice) VALUES (?, ?, ?, ?)`,
				o.ID.String(), item.ProductID.String(), item.Quantity, item.UnitPrice,
			)
			if err != nil {
				return fmt.Errorf("seeding order item: %w", err)
			}
		}
	}

	h.logger.Info("database seeded",
		zap.Int("products", len(products)),
		zap.Int("customers", len(customers)),
		zap.Int("orders", len(orders)),
	)

	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
