package team

import (
	"context"

	"records-api/internal/domain"
)

// Repository persists teams and their embedded rosters.
type Repository interface {
	List(ctx context.Context) ([]domain.Team, error)
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	Create(ctx context.Context, t domain.Team) (*domain.Team, error)
	// AddPlayer appends p to the end of the team's roster and returns the updated team.
	AddPlayer(ctx context.Context, teamID string, p domain.Player) (*domain.Team, error)
	Delete(ctx context.Context, id string) (*domain.Team, error)
}
