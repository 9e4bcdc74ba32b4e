package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/testutil"
)

// Unit Tests

func TestNewMySQLRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestRepository_InsertAndFindByID_RoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	customer := domain.Customer{
		ID:       domain.NewID(),
		FullName: "Ivan Petrov",
		Email:    "ivan@example.com",
	}

	err := repo.Insert(context.Background(), customer)
	require.NoError(t, err)

	got, err := repo.FindByID(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, got.ID)
	assert.Equal(t, "Ivan Petrov", got.FullName)
	assert.Equal(t, "ivan@example.com", got.Email)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestRepository_Insert_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	first := domain.Customer{ID: domain.NewID(), FullName: "Ivan Petrov", Email: "ivan@example.com"}
	require.NoError(t, repo.Insert(context.Background(), first))

	second := domain.Customer{ID: domain.NewID(), FullName: "Another Ivan", Email: "ivan@example.com"}
	err := repo.Insert(context.Background(), second)
	assert.Error(t, err)
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	customer, err := repo.FindByID(context.Background(), domain.NewID())
	assert.Error(t, err)
	assert.Nil(t, customer)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestRepository_FindIDsByNameSubstring_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	ivan := domain.Customer{ID: domain.NewID(), FullName: "Ivan Petrov", Email: "ivan@example.com"}
	maria := domain.Customer{ID: domain.NewID(), FullName: "Maria Sidorova", Email: "maria@example.com"}
	require.NoError(t, repo.Insert(context.Background(), ivan))
	require.NoError(t, repo.Insert(context.Background(), maria))

	// Substring match ignores case
	ids, err := repo.FindIDsByNameSubstring(context.Background(), "PETROV")
	require.NoError(t, err)
	assert.Equal(t, []domain.ID{ivan.ID}, ids)

	// Partial middle-of-name match
	ids, err = repo.FindIDsByNameSubstring(context.Background(), "sido")
	require.NoError(t, err)
	assert.Equal(t, []domain.ID{maria.ID}, ids)
}

func TestRepository_FindIDsByNameSubstring_NoMatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	ivan := domain.Customer{ID: domain.NewID(), FullName: "Ivan Petrov", Email: "ivan@example.com"}
	require.NoError(t, repo.Insert(context.Background(), ivan))

	ids, err := repo.FindIDsByNameSubstring(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestRepository_FindAll_OrderedByCreation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	customer := domain.Customer{ID: domain.NewID(), FullName: "Ivan Petrov", Email: "ivan@example.com"}
	require.NoError(t, repo.Insert(context.Background(), customer))

	customers, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, customer.ID, customers[0].ID)
}
