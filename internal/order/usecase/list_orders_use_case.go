package usecase

import (
	"context"

	"backoffice/internal/domain"
	"backoffice/internal/dto"
)

type OrderReader interface {
	FindFiltered(ctx context.Context, status string, customerIDs []domain.ID) ([]domain.Order, error)
}

type CustomerSearcher interface {
	FindIDsByNameSubstring(ctx context.Context, name string) ([]domain.ID, error)
}

type ListOrdersUseCase struct {
	orders    OrderReader
	customers CustomerSearcher
}

func NewListOrdersUseCase(orders OrderReader, customers CustomerSearcher) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orders:    orders,
		customers: customers,
	}
}

// ListOrders applies the optional filters. A customer-name substring that
// matches no customer yields an empty listing, never the unfiltered set.
// When both customer filters are present the id must also be matched by the
// name search (intersection).
func (uc *ListOrdersUseCase) ListOrders(ctx context.Context, req dto.ListOrdersRequest) ([]dto.OrderSummaryResponse, error) {
	var customerIDs []domain.ID

	if req.CustomerID != "" {
		id, err := domain.ParseID("customer_id", req.CustomerID)
		if err != nil {
			return nil, err
		}
		customerIDs = []domain.ID{id}
	}

	if req.CustomerName != "" {
		matched, err := uc.customers.FindIDsByNameSubstring(ctx, req.CustomerName)
		if err != nil {
			return nil, err
		}
		if len(matched) == 0 {
			return []dto.OrderSummaryResponse{}, nil
		}
		if customerIDs != nil {
			customerIDs = intersect(customerIDs, matched)
			if len(customerIDs) == 0 {
				return []dto.OrderSummaryResponse{}, nil
			}
		} else {
			customerIDs = matched
		}
	}

	orders, err := uc.orders.FindFiltered(ctx, req.Status, customerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.OrderSummaryResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, dto.OrderSummaryResponse{
			ID:         order.ID.String(),
			Date:       order.Date,
			Status:     order.Status,
			CustomerID: order.CustomerID.String(),
		})
	}

	return out, nil
}

func intersect(a, b []domain.ID) []domain.ID {
	set := make(map[domain.ID]struct{}, len(b))
	for _, id := range b {
		set[id] = struct{}{}
	}

	var out []domain.ID
	for _, id := range a {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
