package usecase

import (
	"context"
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/dto"
	apperrors "backoffice/internal/errors"
)

type OrderDetailReader interface {
	FindByID(ctx context.Context, id domain.ID) (*domain.Order, error)
}

type ProductReader interface {
	FindByIDs(ctx context.Context, ids []domain.ID) ([]domain.Product, error)
}

type OrderDetailUseCase struct {
	orders    OrderDetailReader
	customers CustomerRepository
	products  ProductReader
}

func NewOrderDetailUseCase(orders OrderDetailReader, customers CustomerRepository, products ProductReader) *OrderDetailUseCase {
	return &OrderDetailUseCase{
		orders:    orders,
		customers: customers,
		products:  products,
	}
}

// GetOrderDetail joins a stored order against the live customer and catalog
// records. Products deleted since the order was placed degrade to
// placeholder display values; a missing customer is corrupted state and
// fails the whole request.
func (uc *OrderDetailUseCase) GetOrderDetail(ctx context.Context, rawID string) (*dto.OrderDetailResponse, error) {
	orderID, err := domain.ParseID("orderId", rawID)
	if err != nil {
		return nil, err
	}

	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	customer, err := uc.customers.FindByID(ctx, order.CustomerID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewDataIntegrityError(
				fmt.Sprintf("order %s references missing customer %s", order.ID, order.CustomerID))
		}
		return nil, err
	}

	// One bulk lookup for every referenced product.
	productIDs := make([]domain.ID, 0, len(order.Items))
	seen := make(map[domain.ID]struct{}, len(order.Items))
	for _, item := range order.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := uc.products.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[domain.ID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]dto.OrderItemDetail, 0, len(order.Items))
	for _, item := range order.Items {
		detail := dto.OrderItemDetail{
			SKU:         domain.PlaceholderSKU,
			ProductName: domain.DeletedProductLabel,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
		if p, ok := byID[item.ProductID]; ok {
			detail.SKU = p.SKU
			detail.ProductName = p.Name
		}
		items = append(items, detail)
	}

	return &dto.OrderDetailResponse{
		ID:     order.ID.String(),
		Date:   order.Date,
		Status: order.Status,
		Customer: dto.CustomerResponse{
			ID:       customer.ID.String(),
			FullName: customer.FullName,
			Email:    customer.Email,
		},
		Items: items,
	}, nil
}
