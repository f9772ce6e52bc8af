package composer

import (
	"context"

	"records-api/internal/docstore"
	"records-api/internal/domain"
)

// CollectionName is the collection (or table) composers live in.
const CollectionName = "composers"

type docRepo struct {
	coll docstore.Collection[domain.Composer]
}

// New returns a Repository backed by a document collection.
func New(coll docstore.Collection[domain.Composer]) Repository {
	return &docRepo{coll: coll}
}

func (r *docRepo) List(ctx context.Context) ([]domain.Composer, error) {
	return r.coll.Find(ctx)
}

func (r *docRepo) GetByID(ctx context.Context, id string) (*domain.Composer, error) {
	return r.coll.FindByID(ctx, id)
}

func (r *docRepo) Create(ctx context.Context, c domain.Composer) (*domain.Composer, error) {
	c.ID = ""
	return r.coll.Create(ctx, c)
}

func (r *docRepo) Update(ctx context.Context, c domain.Composer) (*domain.Composer, error) {
	return r.coll.Update(ctx, c.ID, docstore.Fields{
		"firstName": c.FirstName,
		"lastName":  c.LastName,
	})
}

func (r *docRepo) Delete(ctx context.Context, id string) (*domain.Composer, error) {
	return r.coll.DeleteByID(ctx, id)
}
