package customer

import (
	"context"

	"records-api/internal/docstore"
	"records-api/internal/domain"
)

const CollectionName = "customers"

type docRepo struct {
	coll docstore.Collection[domain.Customer]
}

// New returns a Repository over coll. The collection is expected to enforce
// uniqueness of userName.
func New(coll docstore.Collection[domain.Customer]) Repository {
	return &docRepo{coll: coll}
}

func (r *docRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	c.ID = ""
	if c.Invoices == nil {
		c.Invoices = []domain.Invoice{}
	}
	return r.coll.Create(ctx, c)
}

func (r *docRepo) GetByUserName(ctx context.Context, userName string) (*domain.Customer, error) {
	return r.coll.FindOne(ctx, domain.UserNameField, userName)
}

func (r *docRepo) AddInvoice(ctx context.Context, userName string, inv domain.Invoice) (*domain.Customer, error) {
	return r.coll.Append(ctx, domain.UserNameField, userName, domain.CustomerInvoicesField, inv)
}
