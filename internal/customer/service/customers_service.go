package service

import (
	"context"
	goerrors "errors"

	"github.com/go-sql-driver/mysql"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
)

type Repository interface {
	Insert(ctx context.Context, c domain.Customer) error
	FindAll(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id domain.ID) (*domain.Customer, error)
}

type CustomerService struct {
	repo Repository
}

func NewService(repo Repository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.FindAll(ctx)
}

func (s *CustomerService) CreateCustomer(ctx context.Context, fullName, email string) (*domain.Customer, error) {
	customer := domain.Customer{
		ID:       domain.NewID(),
		FullName: fullName,
		Email:    email,
	}

	if err := s.repo.Insert(ctx, customer); err != nil {
		if isDuplicateKeyError(err) {
			return nil, errors.NewConflictError("customer with this email already exists")
		}
		return nil, err
	}

	return s.repo.FindByID(ctx, customer.ID)
}

func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if goerrors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
