package user

import (
	"context"

	"records-api/internal/docstore"
	"records-api/internal/domain"
)

const CollectionName = "users"

// Document is the stored form of a user. Unlike domain.User it serializes the
// password hash.
type Document struct {
	ID           string `json:"_id" bson:"_id,omitempty"`
	UserName     string `json:"userName" bson:"userName"`
	Password     string `json:"password" bson:"password"`
	EmailAddress string `json:"emailAddress" bson:"emailAddress"`
}

type docRepo struct {
	coll docstore.Collection[Document]
}

// New returns a Repository over coll. The collection is expected to enforce
// uniqueness of userName.
func New(coll docstore.Collection[Document]) Repository {
	return &docRepo{coll: coll}
}

func (r *docRepo) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	doc, err := r.coll.FindOne(ctx, domain.UserNameField, userName)
	if err != nil {
		return nil, err
	}
	return toDomain(doc), nil
}

func (r *docRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	doc, err := r.coll.Create(ctx, Document{
		UserName:     u.UserName,
		Password:     u.PasswordHash,
		EmailAddress: u.EmailAddress,
	})
	if err != nil {
		return nil, err
	}
	return toDomain(doc), nil
}

func toDomain(d *Document) *domain.User {
	return &domain.User{
		ID:           d.ID,
		UserName:     d.UserName,
		PasswordHash: d.Password,
		EmailAddress: d.EmailAddress,
	}
}
