package mongostore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"records-api/internal/docstore"
	"records-api/internal/domain"
)

func TestMatchFilter(t *testing.T) {
	_, ok := matchFilter(docstore.IDField, "not-hex")
	assert.False(t, ok)

	f, ok := matchFilter(docstore.IDField, "65f0c0ffee0000000000beef")
	require.True(t, ok)
	assert.Contains(t, f, docstore.IDField)

	f, ok = matchFilter(domain.UserNameField, "jdoe")
	require.True(t, ok)
	assert.Equal(t, bson.M{domain.UserNameField: "jdoe"}, f)
}

func TestCollection_Integration(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database("records_api_test")
	require.NoError(t, db.Drop(ctx))

	teams := New[domain.Team](db, "teams")
	team, err := teams.Create(ctx, domain.Team{Name: "Owls", Mascot: "Owl", Players: []domain.Player{}})
	require.NoError(t, err)
	require.Len(t, team.ID, 24)

	updated, err := teams.Append(ctx, docstore.IDField, team.ID, domain.TeamPlayersField, domain.Player{FirstName: "Ada", LastName: "L", Salary: 10})
	require.NoError(t, err)
	require.Len(t, updated.Players, 1)
	assert.Equal(t, "Ada", updated.Players[0].FirstName)

	_, err = teams.FindByID(ctx, "bogus")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	deleted, err := teams.DeleteByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, team.ID, deleted.ID)
	_, err = teams.DeleteByID(ctx, team.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	customers := New[domain.Customer](db, "customers")
	require.NoError(t, customers.EnsureUnique(ctx, domain.UserNameField))
	_, err = customers.Create(ctx, domain.Customer{UserName: "jdoe", Invoices: []domain.Invoice{}})
	require.NoError(t, err)
	_, err = customers.Create(ctx, domain.Customer{UserName: "jdoe", Invoices: []domain.Invoice{}})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}
