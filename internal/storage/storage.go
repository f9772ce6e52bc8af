// Package storage opens the configured document backend and exposes one
// collection per entity.
package storage

import (
	"context"
	"fmt"

	"records-api/internal/config"
	"records-api/internal/db"
	"records-api/internal/docstore"
	"records-api/internal/docstore/memstore"
	"records-api/internal/docstore/mongostore"
	"records-api/internal/docstore/pgstore"
	"records-api/internal/domain"
	"records-api/internal/migrate"
	composerrepo "records-api/internal/repository/composer"
	customerrepo "records-api/internal/repository/customer"
	personrepo "records-api/internal/repository/person"
	teamrepo "records-api/internal/repository/team"
	userrepo "records-api/internal/repository/user"
)

// Store groups the entity collections of one backend.
type Store struct {
	Driver    string
	Composers docstore.Collection[domain.Composer]
	Persons   docstore.Collection[domain.Person]
	Teams     docstore.Collection[domain.Team]
	Customers docstore.Collection[domain.Customer]
	Users     docstore.Collection[userrepo.Document]

	ping  func(ctx context.Context) error
	close func()
}

// Ping checks the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases backend connections.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open connects to the backend named by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	case config.DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// NewMemory returns a process-local store.
func NewMemory() *Store {
	return &Store{
		Driver:    config.DriverMemory,
		Composers: memstore.New[domain.Composer](composerrepo.CollectionName),
		Persons:   memstore.New[domain.Person](personrepo.CollectionName),
		Teams:     memstore.New[domain.Team](teamrepo.CollectionName),
		Customers: memstore.New[domain.Customer](customerrepo.CollectionName, domain.UserNameField),
		Users:     memstore.New[userrepo.Document](userrepo.CollectionName, domain.UserNameField),
	}
}

func openMongo(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	client, err := db.ConnectMongo(ctx, cfg.MongoURI, cfg.ConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	database := client.Database(cfg.MongoDatabase)

	customers := mongostore.New[domain.Customer](database, customerrepo.CollectionName)
	users := mongostore.New[userrepo.Document](database, userrepo.CollectionName)
	for _, idx := range []interface {
		EnsureUnique(ctx context.Context, field string) error
	}{customers, users} {
		if err := idx.EnsureUnique(ctx, domain.UserNameField); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("ensure indexes: %w", err)
		}
	}

	return &Store{
		Driver:    config.DriverMongo,
		Composers: mongostore.New[domain.Composer](database, composerrepo.CollectionName),
		Persons:   mongostore.New[domain.Person](database, personrepo.CollectionName),
		Teams:     mongostore.New[domain.Team](database, teamrepo.CollectionName),
		Customers: customers,
		Users:     users,
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		close: func() {
			_ = client.Disconnect(context.Background())
		},
	}, nil
}

func openPostgres(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	pool, err := db.Connect(ctx, cfg.PostgresDSN, cfg.ConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if cfg.AutoMigrate {
		if err := migrate.Apply(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
	}

	return &Store{
		Driver:    config.DriverPostgres,
		Composers: pgstore.New[domain.Composer](pool, composerrepo.CollectionName),
		Persons:   pgstore.New[domain.Person](pool, personrepo.CollectionName),
		Teams:     pgstore.New[domain.Team](pool, teamrepo.CollectionName),
		Customers: pgstore.New[domain.Customer](pool, customerrepo.CollectionName),
		Users:     pgstore.New[userrepo.Document](pool, userrepo.CollectionName),
		ping:      pool.Ping,
		close:     pool.Close,
	}, nil
}
