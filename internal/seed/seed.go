// Package seed inserts demo documents for manual testing.
package seed

import (
	"context"
	"fmt"

	"records-api/internal/domain"
)

type ComposerStore interface {
	List(ctx context.Context) ([]domain.Composer, error)
	Create(ctx context.Context, c domain.Composer) (*domain.Composer, error)
}

type PersonStore interface {
	List(ctx context.Context) ([]domain.Person, error)
	Create(ctx context.Context, p domain.Person) (*domain.Person, error)
}

type TeamStore interface {
	List(ctx context.Context) ([]domain.Team, error)
	Create(ctx context.Context, t domain.Team) (*domain.Team, error)
}

// Stores groups the writers Apply seeds through.
type Stores struct {
	Composers ComposerStore
	Persons   PersonStore
	Teams     TeamStore
}

// Result counts the documents Apply created.
type Result struct {
	Composers int
	Persons   int
	Teams     int
}

var composers = []domain.Composer{
	{FirstName: "Johann", LastName: "Bach"},
	{FirstName: "Clara", LastName: "Schumann"},
	{FirstName: "Claude", LastName: "Debussy"},
}

var persons = []domain.Person{
	{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		BirthDate:  "1815-12-10",
		Roles:      []domain.Role{{Text: "mathematician"}, {Text: "writer"}},
		Dependents: []domain.Dependent{{FirstName: "Byron", LastName: "King"}},
	},
	{
		FirstName: "Grace",
		LastName:  "Hopper",
		BirthDate: "1906-12-09",
		Roles:     []domain.Role{{Text: "rear admiral"}},
	},
}

var teams = []domain.Team{
	{
		Name:   "Comets",
		Mascot: "Blaze",
		Players: []domain.Player{
			{FirstName: "Ann", LastName: "Lee", Salary: 1200},
			{FirstName: "Bo", LastName: "Kim", Salary: 900},
		},
	},
	{Name: "Owls", Mascot: "Hoot"},
}

// Apply inserts the demo data. Each collection is only seeded when empty, so
// running it twice is harmless.
func Apply(ctx context.Context, s Stores) (Result, error) {
	var res Result
	var err error

	if res.Composers, err = seedIfEmpty(ctx, s.Composers.List, s.Composers.Create, composers); err != nil {
		return res, fmt.Errorf("seed composers: %w", err)
	}
	if res.Persons, err = seedIfEmpty(ctx, s.Persons.List, s.Persons.Create, persons); err != nil {
		return res, fmt.Errorf("seed persons: %w", err)
	}
	if res.Teams, err = seedIfEmpty(ctx, s.Teams.List, s.Teams.Create, teams); err != nil {
		return res, fmt.Errorf("seed teams: %w", err)
	}
	return res, nil
}

func seedIfEmpty[T any](
	ctx context.Context,
	list func(context.Context) ([]T, error),
	create func(context.Context, T) (*T, error),
	docs []T,
) (int, error) {
	existing, err := list(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for _, d := range docs {
		if _, err := create(ctx, d); err != nil {
			return 0, err
		}
	}
	return len(docs), nil
}
