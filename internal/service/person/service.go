package person

import (
	"context"
	"fmt"
	"strings"

	"records-api/internal/domain"
	"records-api/internal/repository/person"
)

// Service manages person documents. Persons can only be listed and created.
type Service struct {
	repo person.Repository
}

func New(repo person.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Person, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, p domain.Person) (*domain.Person, error) {
	p, err := normalize(p)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func normalize(p domain.Person) (domain.Person, error) {
	if blank(p.FirstName) {
		return p, domain.NewValidationError("firstName", "is required")
	}
	if blank(p.LastName) {
		return p, domain.NewValidationError("lastName", "is required")
	}

	roles := make([]domain.Role, 0, len(p.Roles))
	for i, r := range p.Roles {
		if blank(r.Text) {
			return p, domain.NewValidationError(fmt.Sprintf("roles[%d].text", i), "is required")
		}
		roles = append(roles, r)
	}
	p.Roles = roles

	dependents := make([]domain.Dependent, 0, len(p.Dependents))
	for i, d := range p.Dependents {
		if blank(d.FirstName) {
			return p, domain.NewValidationError(fmt.Sprintf("dependents[%d].firstName", i), "is required")
		}
		if blank(d.LastName) {
			return p, domain.NewValidationError(fmt.Sprintf("dependents[%d].lastName", i), "is required")
		}
		dependents = append(dependents, d)
	}
	p.Dependents = dependents
	return p, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
