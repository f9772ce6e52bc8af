package main

import (
	"context"
	"log"

	"records-api/internal/app"
	"records-api/internal/config"
	"records-api/internal/logger"
	"records-api/internal/seed"
	"records-api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logg, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		logg.Fatalw("open store", "driver", cfg.Store.Driver, "error", err)
	}
	defer store.Close()

	services, err := app.NewServices(store, cfg.Auth)
	if err != nil {
		logg.Fatalw("init services", "error", err)
	}

	res, err := seed.Apply(ctx, seed.Stores{
		Composers: services.Composers,
		Persons:   services.Persons,
		Teams:     services.Teams,
	})
	if err != nil {
		logg.Fatalw("seed apply", "error", err)
	}

	logg.Infow("seed applied", "composers", res.Composers, "persons", res.Persons, "teams", res.Teams)
}
