package user

import (
	"context"

	"records-api/internal/domain"
)

// Repository persists registered users.
type Repository interface {
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}
