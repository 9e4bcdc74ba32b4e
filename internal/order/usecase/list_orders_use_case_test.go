package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	"backoffice/internal/dto"
	apperrors "backoffice/internal/errors"
)

type mockOrderReader struct {
	FindFilteredFunc func(ctx context.Context, status string, customerIDs []domain.ID) ([]domain.Order, error)
}

func (m *mockOrderReader) FindFiltered(ctx context.Context, status string, customerIDs []domain.ID) ([]domain.Order, error) {
	return m.FindFilteredFunc(ctx, status, customerIDs)
}

func TestListOrders_NoFilters(t *testing.T) {
	orderID := domain.NewID()
	customerID := domain.NewID()
	date := time.Now().UTC()

	orders := &mockOrderReader{
		FindFilteredFunc: func(ctx context.Context, status string, customerIDs []domain.ID) ([]domain.Order, error) {
			assert.Empty(t, status)
			assert.Nil(t, customerIDs)
			return []domain.Order{
				{ID: orderID, CustomerID: customerID, Status: domain.OrderStatusNew, Date: date},
			}, nil
		},
	}

	uc := NewListOrdersUseCase(orders, &mockCustomerRepository{})

	resp, err := uc.ListOrders(context.Background(), dto.ListOrdersRequest{})

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, orderID.String(), resp[0].ID)
	assert.Equal(t, customerID.String(), resp[0].CustomerID)
	assert.Equal(t, domain.OrderStatusNew, resp[0].Status)
	assert.Equal(t, date, resp[0].Date)
}

func TestListOrders_StatusFilterPassedThrough(t *testing.T) {
	var gotStatus string
	orders := &mockOrderReader{
		FindFilteredFunc: func(ctx context.Context, status string, customerIDs []domain.ID) ([]domain.Order, error) {
			gotStatus = status
			return nil, nil
		},
	}

	uc := NewListOrdersUseCase(orders, &mockCustomerRepository{})

	_, err := uc.ListOrders(context.Background(), dto.ListOrdersRequest{Status: domain.OrderStatusPaid})

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, gotStatus)
}

func TestListOrders_NameMatchesNoCustomer_ReturnsEmpty(t *testing.T) {
	repoCalled := false
	orders := &mockOrderReader{
		FindFilteredFunc: func(ctx context.Context, status string, customerIDs []domain.ID) ([]domain.Order, error) {
			repoCalled = true
			return nil, nil
		},
	}

	customers := &mockCustomerRepository{
		FindIDsByNameSubstringFunc: func(ctx context.Context, name string) ([]domain.ID, error) {
			return nil, nil
		},
	}

	uc := NewListOrdersUseCase(orders, customers)

	resp, err := uc.ListOrders(context.Background(), dto.ListOrdersRequest{CustomerName: "nobody"})

	require.NoError(t, err)
	// Zero name matches must yield zero orders, never the unfiltered set.
	assert.Empty(t, resp)
	assert.False(t, repoCalled)
}

func TestListOrders_NameFilterResolvesIDs(t *testing.T) {
	matched := []domain.ID{domain.NewID(), domain.NewID()}

	var gotIDs []domain.ID
	orders := &mockOrderReader{
		FindFilteredFunc: func(ctx context.Context, status string, customerIDs []domain.ID) ([]domain.Order, error) {
			gotIDs = customerIDs
			return nil, nil
		},
	}

	customers := &mockCustomerRepository{
		FindIDsByNameSubstringFunc: func(ctx context.Context, name string) ([]domain.ID, error) {
			assert.Equal(t, "petrov", name)
			return matched, nil
		},
	}

	uc := NewListOrdersUseCase(orders, customers)

	_, err := uc.ListOrders(context.Background(), dto.ListOrdersRequest{CustomerName: "petrov"})

	require.NoError(t, err)
	assert.Equal(t, matched, gotIDs)
}

func TestListOrders_IDAndNameIntersect(t *testing.T) {
	customerID := domain.NewID()
	other := domain.NewID()

	var gotIDs []domain.ID
	orders := &mockOrderReader{
		FindFilteredFunc: func(ctx context.Context, status string, customerIDs []domain.ID) ([]domain.Order, error) {
			gotIDs = customerIDs
			return nil, nil
		},
	}

	customers := &mockCustomerRepository{
		FindIDsByNameSubstringFunc: func(ctx context.Context, name string) ([]domain.ID, error) {
			return []domain.ID{other, customerID}, nil
		},
	}

	uc := NewListOrdersUseCase(orders, customers)

	_, err := uc.ListOrders(context.Background(), dto.ListOrdersRequest{
		CustomerID:   customerID.String(),
		CustomerName: "petrov",
	})

	require.NoError(t, err)
	// Both filters supplied: the id filter is intersected with the resolved
	// name set, not overwritten by it.
	assert.Equal(t, []domain.ID{customerID}, gotIDs)
}

func TestListOrders_IDAndNameDisjoint_ReturnsEmpty(t *testing.T) {
	repoCalled := false
	orders := &mockOrderReader{
		FindFilteredFunc: func(ctx context.Context, status string, customerIDs []domain.ID) ([]domain.Order, error) {
			repoCalled = true
			return nil, nil
		},
	}

	customers := &mockCustomerRepository{
		FindIDsByNameSubstringFunc: func(ctx context.Context, name string) ([]domain.ID, error) {
			return []domain.ID{domain.NewID()}, nil
		},
	}

	uc := NewListOrdersUseCase(orders, customers)

	resp, err := uc.ListOrders(context.Background(), dto.ListOrdersRequest{
		CustomerID:   domain.NewID().String(),
		CustomerName: "petrov",
	})

	require.NoError(t, err)
	assert.Empty(t, resp)
	assert.False(t, repoCalled)
}

func TestListOrders_MalformedCustomerID(t *testing.T) {
	uc := NewListOrdersUseCase(&mockOrderReader{}, &mockCustomerRepository{})

	_, err := uc.ListOrders(context.Background(), dto.ListOrdersRequest{CustomerID: "bogus"})

	require.Error(t, err)
	ire, ok := apperrors.IsInvalidReferenceError(err)
	require.True(t, ok)
	assert.Equal(t, "customer_id", ire.Field)
}
