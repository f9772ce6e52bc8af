package composer

import (
	"context"

	"records-api/internal/domain"
)

// Repository persists and fetches composers.
type Repository interface {
	List(ctx context.Context) ([]domain.Composer, error)
	GetByID(ctx context.Context, id string) (*domain.Composer, error)
	Create(ctx context.Context, c domain.Composer) (*domain.Composer, error)
	Update(ctx context.Context, c domain.Composer) (*domain.Composer, error)
	Delete(ctx context.Context, id string) (*domain.Composer, error)
}
