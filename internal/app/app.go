// Package app wires repositories and services over an opened store.
package app

import (
	"fmt"

	"records-api/internal/config"
	"records-api/internal/httpserver"
	"records-api/internal/metrics"
	composerrepo "records-api/internal/repository/composer"
	customerrepo "records-api/internal/repository/customer"
	personrepo "records-api/internal/repository/person"
	teamrepo "records-api/internal/repository/team"
	userrepo "records-api/internal/repository/user"
	composersvc "records-api/internal/service/composer"
	customersvc "records-api/internal/service/customer"
	personsvc "records-api/internal/service/person"
	teamsvc "records-api/internal/service/team"
	usersvc "records-api/internal/service/user"
	"records-api/internal/storage"
)

// Services holds one service per entity.
type Services struct {
	Composers *composersvc.Service
	Persons   *personsvc.Service
	Teams     *teamsvc.Service
	Customers *customersvc.Service
	Users     *usersvc.Service
}

// NewServices builds the services over store.
func NewServices(store *storage.Store, auth config.AuthConfig) (*Services, error) {
	hasher, err := usersvc.NewBcryptHasher(auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}
	return &Services{
		Composers: composersvc.New(composerrepo.New(store.Composers)),
		Persons:   personsvc.New(personrepo.New(store.Persons)),
		Teams:     teamsvc.New(teamrepo.New(store.Teams)),
		Customers: customersvc.New(customerrepo.New(store.Customers)),
		Users:     usersvc.New(userrepo.New(store.Users), hasher),
	}, nil
}

// Deps adapts the services to the HTTP layer.
func (s *Services) Deps(store *storage.Store, m *metrics.Metrics) httpserver.Deps {
	return httpserver.Deps{
		Composers: s.Composers,
		Persons:   s.Persons,
		Teams:     s.Teams,
		Customers: s.Customers,
		Users:     s.Users,
		Store:     store,
		Metrics:   m,
	}
}
