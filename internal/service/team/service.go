package team

import (
	"context"
	"fmt"
	"strings"

	"records-api/internal/domain"
	"records-api/internal/repository/team"
)

// Service manages teams and their rosters.
type Service struct {
	repo team.Repository
}

func New(repo team.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Team, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Team, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a team together with an optional initial roster.
func (s *Service) Create(ctx context.Context, t domain.Team) (*domain.Team, error) {
	if blank(t.Name) {
		return nil, domain.NewValidationError("name", "is required")
	}
	players := make([]domain.Player, 0, len(t.Players))
	for i, p := range t.Players {
		p, err := normalizePlayer(p, fmt.Sprintf("players[%d].", i))
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	t.Players = players
	return s.repo.Create(ctx, t)
}

// Players returns the roster of the team in insertion order.
func (s *Service) Players(ctx context.Context, id string) ([]domain.Player, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Players == nil {
		return []domain.Player{}, nil
	}
	return t.Players, nil
}

// AddPlayer appends p to the roster and returns the updated team.
func (s *Service) AddPlayer(ctx context.Context, id string, p domain.Player) (*domain.Team, error) {
	p, err := normalizePlayer(p, "")
	if err != nil {
		return nil, err
	}
	return s.repo.AddPlayer(ctx, id, p)
}

func (s *Service) Delete(ctx context.Context, id string) (*domain.Team, error) {
	return s.repo.Delete(ctx, id)
}

func normalizePlayer(p domain.Player, prefix string) (domain.Player, error) {
	switch {
	case blank(p.FirstName):
		return p, domain.NewValidationError(prefix+"firstName", "is required")
	case blank(p.LastName):
		return p, domain.NewValidationError(prefix+"lastName", "is required")
	case p.Salary < 0:
		return p, domain.NewValidationError(prefix+"salary", "must not be negative")
	}
	return p, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
