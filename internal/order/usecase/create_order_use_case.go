package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"backoffice/internal/domain"
	"backoffice/internal/dto"
	apperrors "backoffice/internal/errors"
)

type CustomerRepository interface {
	FindByID(ctx context.Context, id domain.ID) (*domain.Customer, error)
}

type PlacementService interface {
	PlaceOrder(ctx context.Context, order domain.Order) error
}

type CreateOrderUseCase struct {
	customers CustomerRepository
	placement PlacementService
	logger    *zap.Logger
	now       func() time.Time
}

func NewCreateOrderUseCase(customers CustomerRepository, placement PlacementService, logger *zap.Logger) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		customers: customers,
		placement: placement,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderSummaryResponse, error) {
	customerID, err := domain.ParseID("customerId", req.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := domain.ParseID("productId", item.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.OrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	// Customer resolution happens before the stock transaction is opened.
	if _, err := uc.customers.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.OrderStatusNew
	}

	date := uc.now()
	if req.Date != nil {
		date = req.Date.UTC()
	}

	order := domain.Order{
		ID:         domain.NewID(),
		CustomerID: customerID,
		Status:     status,
		Date:       date,
		Items:      items,
	}

	if err := uc.placement.PlaceOrder(ctx, order); err != nil {
		if ise, ok := apperrors.IsInsufficientStockError(err); ok {
			uc.logger.Warn("order rejected, insufficient stock",
				zap.String("productId", ise.ProductID),
				zap.Int("requested", ise.Requested),
				zap.Int("available", ise.Available),
			)
		}
		return nil, err
	}

	return &dto.OrderSummaryResponse{
		ID:         order.ID.String(),
		Date:       order.Date,
		Status:     order.Status,
		CustomerID: order.CustomerID.String(),
	}, nil
}
