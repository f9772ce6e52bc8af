package person

import (
	"context"

	"records-api/internal/domain"
)

// Repository persists and fetches persons.
type Repository interface {
	List(ctx context.Context) ([]domain.Person, error)
	Create(ctx context.Context, p domain.Person) (*domain.Person, error)
}
