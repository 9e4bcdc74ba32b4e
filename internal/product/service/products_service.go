package service

import (
	"context"
	goerrors "errors"

	"github.com/go-sql-driver/mysql"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
)

type Repository interface {
	Insert(ctx context.Context, p domain.Product) error
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id domain.ID) (*domain.Product, error)
}

type ProductService struct {
	repo Repository
}

func NewService(repo Repository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) CreateProduct(ctx context.Context, sku, name string, price float64, stock int) (*domain.Product, error) {
	product := domain.Product{
		ID:    domain.NewID(),
		SKU:   sku,
		Name:  name,
		Price: price,
		Stock: stock,
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		if isDuplicateKeyError(err) {
			return nil, errors.NewConflictError("product with this sku already exists")
		}
		return nil, err
	}

	// Re-read so the response carries the stored record.
	return s.repo.FindByID(ctx, product.ID)
}

func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if goerrors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
