package usecase

import (
	"context"
	"sort"

	"backoffice/internal/domain"
	"backoffice/internal/dto"
)

type SalesReader interface {
	SumQuantitiesByProduct(ctx context.Context) ([]domain.ProductSales, error)
}

type CatalogReader interface {
	FindByIDs(ctx context.Context, ids []domain.ID) ([]domain.Product, error)
}

// SalesByProductUseCase computes the sales report: total quantity sold per
// product across all orders, left-joined against the catalog for display
// names. Products deleted since their orders were placed still appear,
// under the deleted-product label.
type SalesByProductUseCase struct {
	orders   SalesReader
	products CatalogReader
}

func NewSalesByProductUseCase(orders SalesReader, products CatalogReader) *SalesByProductUseCase {
	return &SalesByProductUseCase{
		orders:   orders,
		products: products,
	}
}

func (uc *SalesByProductUseCase) SalesByProduct(ctx context.Context) ([]dto.SalesByProductRow, error) {
	sales, err := uc.orders.SumQuantitiesByProduct(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]domain.ID, 0, len(sales))
	for _, row := range sales {
		ids = append(ids, row.ProductID)
	}

	products, err := uc.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[domain.ID]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	rows := make([]dto.SalesByProductRow, 0, len(sales))
	for _, row := range sales {
		name, ok := names[row.ProductID]
		if !ok {
			name = domain.DeletedProductLabel
		}
		rows = append(rows, dto.SalesByProductRow{
			ProductName:  name,
			TotalSoldQty: row.TotalQuantity,
		})
	}

	// Quantity descending, ties broken by name ascending.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalSoldQty != rows[j].TotalSoldQty {
			return rows[i].TotalSoldQty > rows[j].TotalSoldQty
		}
		return rows[i].ProductName < rows[j].ProductName
	})

	return rows, nil
}
