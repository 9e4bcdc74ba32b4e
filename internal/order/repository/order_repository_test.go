package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

// insertOrder commits an order through the repository the way placement does.
func insertOrder(t *testing.T, db *sql.DB, repo *MySQLOrderRepository, order domain.Order) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	err = repo.Insert(context.Background(), tx, order)
	require.NoError(t, err)

	require.NoError(t, tx.Commit())
}

func TestOrderRepository_InsertAndFindByID_RoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	// DATETIME keeps second precision
	date := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	productA := domain.NewID()
	productB := domain.NewID()

	order := domain.Order{
		ID:         domain.NewID(),
		CustomerID: domain.NewID(),
		Status:     domain.OrderStatusNew,
		Date:       date,
		Items: []domain.OrderItem{
			{ProductID: productA, Quantity: 2, UnitPrice: 9.99},
			{ProductID: productB, Quantity: 1, UnitPrice: 19.90},
		},
	}

	insertOrder(t, db, repo, order)

	got, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.CustomerID, got.CustomerID)
	assert.Equal(t, domain.OrderStatusNew, got.Status)
	assert.True(t, date.Equal(got.Date))

	// Line items come back in insertion order with their frozen prices
	require.Len(t, got.Items, 2)
	assert.Equal(t, productA, got.Items[0].ProductID)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, 9.99, got.Items[0].UnitPrice)
	assert.Equal(t, productB, got.Items[1].ProductID)
	assert.Equal(t, 1, got.Items[1].Quantity)
	assert.Equal(t, 19.90, got.Items[1].UnitPrice)
}

func TestOrderRepository_Insert_TransactionRollback(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	order := domain.Order{
		ID:         domain.NewID(),
		CustomerID: domain.NewID(),
		Status:     domain.OrderStatusNew,
		Date:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Items:      []domain.OrderItem{{ProductID: domain.NewID(), Quantity: 1, UnitPrice: 1.00}},
	}

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	err = repo.Insert(context.Background(), tx, order)
	require.NoError(t, err)

	require.NoError(t, tx.Rollback())

	// Neither the header nor the items survive the rollback
	_, err = repo.FindByID(context.Background(), order.ID)
	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)

	var itemCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM order_items WHERE orderId = ?`, order.ID.String()).Scan(&itemCount)
	require.NoError(t, err)
	assert.Equal(t, 0, itemCount)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	order, err := repo.FindByID(context.Background(), domain.NewID())
	assert.Error(t, err)
	assert.Nil(t, order)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrderRepository_FindFiltered_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	customerID := domain.NewID()
	older := domain.Order{
		ID: domain.NewID(), CustomerID: customerID, Status: domain.OrderStatusNew,
		Date: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	newer := domain.Order{
		ID: domain.NewID(), CustomerID: customerID, Status: domain.OrderStatusPaid,
		Date: time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
	}
	insertOrder(t, db, repo, older)
	insertOrder(t, db, repo, newer)

	orders, err := repo.FindFiltered(context.Background(), "", nil)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}

func TestOrderRepository_FindFiltered_ByStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	customerID := domain.NewID()
	newOrder := domain.Order{
		ID: domain.NewID(), CustomerID: customerID, Status: domain.OrderStatusNew,
		Date: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	paidOrder := domain.Order{
		ID: domain.NewID(), CustomerID: customerID, Status: domain.OrderStatusPaid,
		Date: time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
	}
	insertOrder(t, db, repo, newOrder)
	insertOrder(t, db, repo, paidOrder)

	orders, err := repo.FindFiltered(context.Background(), domain.OrderStatusPaid, nil)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, paidOrder.ID, orders[0].ID)
}

func TestOrderRepository_FindFiltered_ByCustomers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	ivan := domain.NewID()
	maria := domain.NewID()
	ivansOrder := domain.Order{
		ID: domain.NewID(), CustomerID: ivan, Status: domain.OrderStatusNew,
		Date: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	mariasOrder := domain.Order{
		ID: domain.NewID(), CustomerID: maria, Status: domain.OrderStatusNew,
		Date: time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
	}
	insertOrder(t, db, repo, ivansOrder)
	insertOrder(t, db, repo, mariasOrder)

	orders, err := repo.FindFiltered(context.Background(), "", []domain.ID{ivan})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, ivansOrder.ID, orders[0].ID)
}

func TestOrderRepository_FindFiltered_StatusAndCustomerCombined(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	ivan := domain.NewID()
	maria := domain.NewID()
	insertOrder(t, db, repo, domain.Order{
		ID: domain.NewID(), CustomerID: ivan, Status: domain.OrderStatusNew,
		Date: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	matching := domain.Order{
		ID: domain.NewID(), CustomerID: ivan, Status: domain.OrderStatusPaid,
		Date: time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
	}
	insertOrder(t, db, repo, matching)
	insertOrder(t, db, repo, domain.Order{
		ID: domain.NewID(), CustomerID: maria, Status: domain.OrderStatusPaid,
		Date: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
	})

	orders, err := repo.FindFiltered(context.Background(), domain.OrderStatusPaid, []domain.ID{ivan})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, matching.ID, orders[0].ID)
}

func TestOrderRepository_SumQuantitiesByProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	mug := domain.NewID()
	shirt := domain.NewID()
	customerID := domain.NewID()

	// Two orders touching the same product aggregate across both
	insertOrder(t, db, repo, domain.Order{
		ID: domain.NewID(), CustomerID: customerID, Status: domain.OrderStatusNew,
		Date: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Items: []domain.OrderItem{
			{ProductID: mug, Quantity: 2, UnitPrice: 9.99},
			{ProductID: shirt, Quantity: 1, UnitPrice: 19.90},
		},
	})
	insertOrder(t, db, repo, domain.Order{
		ID: domain.NewID(), CustomerID: customerID, Status: domain.OrderStatusPaid,
		Date: time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
		Items: []domain.OrderItem{
			{ProductID: mug, Quantity: 3, UnitPrice: 9.99},
		},
	})

	sales, err := repo.SumQuantitiesByProduct(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.ProductSales{
		{ProductID: mug, TotalQuantity: 5},
		{ProductID: shirt, TotalQuantity: 1},
	}, sales)
}

func TestOrderRepository_SumQuantitiesByProduct_NoOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	sales, err := repo.SumQuantitiesByProduct(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sales)
}
