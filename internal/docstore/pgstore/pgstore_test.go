package pgstore

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"records-api/internal/docstore"
	"records-api/internal/domain"
	"records-api/internal/migrate"
)

func TestCollection_Lifecycle(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	require.NoError(t, migrate.Apply(ctx, pool))
	resetTables(ctx, t, pool)

	composers := New[domain.Composer](pool, "composers")

	list, err := composers.Find(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := composers.Create(ctx, domain.Composer{FirstName: "Johann", LastName: "Bach"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	updated, err := composers.Update(ctx, created.ID, docstore.Fields{"lastName": "Pachelbel"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Pachelbel", updated.LastName)

	_, err = composers.FindByID(ctx, "malformed")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	deleted, err := composers.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Johann", deleted.FirstName)
	_, err = composers.DeleteByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollection_AppendByKeyAndUnique(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	require.NoError(t, migrate.Apply(ctx, pool))
	resetTables(ctx, t, pool)

	customers := New[domain.Customer](pool, "customers")
	_, err := customers.Create(ctx, domain.Customer{UserName: "jdoe", Invoices: []domain.Invoice{}})
	require.NoError(t, err)
	_, err = customers.Create(ctx, domain.Customer{UserName: "jdoe"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	inv := domain.Invoice{Subtotal: 10, Tax: 1, DateCreated: "2024-02-20", LineItems: []domain.LineItem{{Name: "pen", Price: 2, Quantity: 5}}}
	got, err := customers.Append(ctx, domain.UserNameField, "jdoe", domain.CustomerInvoicesField, inv)
	require.NoError(t, err)
	require.Len(t, got.Invoices, 1)
	assert.Equal(t, inv, got.Invoices[0])

	_, err = customers.Append(ctx, domain.UserNameField, "nobody", domain.CustomerInvoicesField, inv)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "connect db")
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(ctx, `TRUNCATE composers, persons, teams, customers, users`)
	require.NoError(t, err, "truncate tables")
}
