package composer

import (
	"context"
	"strings"

	"records-api/internal/domain"
	"records-api/internal/repository/composer"
)

// Service manages composer documents.
type Service struct {
	repo composer.Repository
}

func New(repo composer.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Composer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Composer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, c domain.Composer) (*domain.Composer, error) {
	c, err := normalize(c)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

// Update replaces the names of the composer with the given id.
func (s *Service) Update(ctx context.Context, id string, c domain.Composer) (*domain.Composer, error) {
	c, err := normalize(c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return s.repo.Update(ctx, c)
}

// Delete removes the composer and returns it as it was stored.
func (s *Service) Delete(ctx context.Context, id string) (*domain.Composer, error) {
	return s.repo.Delete(ctx, id)
}

func normalize(c domain.Composer) (domain.Composer, error) {
	if blank(c.FirstName) {
		return c, domain.NewValidationError("firstName", "is required")
	}
	if blank(c.LastName) {
		return c, domain.NewValidationError("lastName", "is required")
	}
	return c, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
