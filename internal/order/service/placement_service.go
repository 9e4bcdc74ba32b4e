package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
)

type TransactionRunner interface {
	InTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type CatalogRepository interface {
	FindByIDsForUpdate(ctx context.Context, tx *sql.Tx, ids []domain.ID) ([]domain.Product, error)
	DecrementStock(ctx context.Context, tx *sql.Tx, id domain.ID, quantity int) error
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error
}

// PlacementService runs the transactional core of order creation: validate
// every line item, decrement every stock, persist the order. The sequence is
// all-or-nothing; a failure at any point leaves no stock mutation and no
// persisted order.
type PlacementService struct {
	tx        TransactionRunner
	products  CatalogRepository
	orders    OrderRepository
	logger    *zap.Logger
	txTimeout time.Duration
}

func NewPlacementService(
	tx TransactionRunner,
	products CatalogRepository,
	orders OrderRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *PlacementService {
	return &PlacementService{
		tx:        tx,
		products:  products,
		orders:    orders,
		logger:    logger,
		txTimeout: txTimeout,
	}
}

func (s *PlacementService) PlaceOrder(ctx context.Context, order domain.Order) error {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	// Lock rows in a fixed id order so concurrent placements cannot deadlock.
	lockIDs := uniqueSortedProductIDs(order.Items)

	err := s.tx.InTx(txCtx, func(tx *sql.Tx) error {
		products, err := s.products.FindByIDsForUpdate(txCtx, tx, lockIDs)
		if err != nil {
			return err
		}

		byID := make(map[domain.ID]domain.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		// Validate every item before touching any stock.
		for _, item := range order.Items {
			product, ok := byID[item.ProductID]
			if !ok {
				return errors.NewNotFoundError(fmt.Sprintf("product %s not found", item.ProductID))
			}
			if product.Stock < item.Quantity {
				return errors.NewInsufficientStockError(item.ProductID.String(), item.Quantity, product.Stock)
			}
		}

		for _, item := range order.Items {
			if err := s.products.DecrementStock(txCtx, tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		return s.orders.Insert(txCtx, tx, order)
	})
	if err != nil {
		return err
	}

	s.logger.Info("order placed",
		zap.String("orderId", order.ID.String()),
		zap.String("customerId", order.CustomerID.String()),
		zap.Int("itemCount", len(order.Items)),
	)

	return nil
}

func uniqueSortedProductIDs(items []domain.OrderItem) []domain.ID {
	seen := make(map[domain.ID]struct{}, len(items))
	var ids []domain.ID
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
