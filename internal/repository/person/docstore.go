package person

import (
	"context"

	"records-api/internal/docstore"
	"records-api/internal/domain"
)

const CollectionName = "persons"

type docRepo struct {
	coll docstore.Collection[domain.Person]
}

func New(coll docstore.Collection[domain.Person]) Repository {
	return &docRepo{coll: coll}
}

func (r *docRepo) List(ctx context.Context) ([]domain.Person, error) {
	return r.coll.Find(ctx)
}

func (r *docRepo) Create(ctx context.Context, p domain.Person) (*domain.Person, error) {
	p.ID = ""
	return r.coll.Create(ctx, p)
}
