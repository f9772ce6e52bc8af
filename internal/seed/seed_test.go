package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	composerrepo "records-api/internal/repository/composer"
	personrepo "records-api/internal/repository/person"
	teamrepo "records-api/internal/repository/team"
	composersvc "records-api/internal/service/composer"
	personsvc "records-api/internal/service/person"
	teamsvc "records-api/internal/service/team"
	"records-api/internal/storage"
)

func TestApply_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	stores := Stores{
		Composers: composersvc.New(composerrepo.New(store.Composers)),
		Persons:   personsvc.New(personrepo.New(store.Persons)),
		Teams:     teamsvc.New(teamrepo.New(store.Teams)),
	}

	res, err := Apply(ctx, stores)
	require.NoError(t, err)
	assert.Equal(t, Result{Composers: 3, Persons: 2, Teams: 2}, res)

	res, err = Apply(ctx, stores)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)

	list, err := stores.Teams.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Len(t, list[0].Players, 2)
}
