package team

import (
	"context"

	"records-api/internal/docstore"
	"records-api/internal/domain"
)

const CollectionName = "teams"

type docRepo struct {
	coll docstore.Collection[domain.Team]
}

func New(coll docstore.Collection[domain.Team]) Repository {
	return &docRepo{coll: coll}
}

func (r *docRepo) List(ctx context.Context) ([]domain.Team, error) {
	return r.coll.Find(ctx)
}

func (r *docRepo) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	return r.coll.FindByID(ctx, id)
}

func (r *docRepo) Create(ctx context.Context, t domain.Team) (*domain.Team, error) {
	t.ID = ""
	if t.Players == nil {
		t.Players = []domain.Player{}
	}
	return r.coll.Create(ctx, t)
}

func (r *docRepo) AddPlayer(ctx context.Context, teamID string, p domain.Player) (*domain.Team, error) {
	return r.coll.Append(ctx, docstore.IDField, teamID, domain.TeamPlayersField, p)
}

func (r *docRepo) Delete(ctx context.Context, id string) (*domain.Team, error) {
	return r.coll.DeleteByID(ctx, id)
}
