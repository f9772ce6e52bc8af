package main

import (
	"context"
	"flag"
	"log"

	"records-api/internal/config"
	"records-api/internal/db"
	"records-api/internal/logger"
	"records-api/internal/migrate"
)

func main() {
	down := flag.Bool("down", false, "Revert all migrations instead of applying them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logg, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	if cfg.Store.Driver != config.DriverPostgres {
		logg.Infow("nothing to migrate", "driver", cfg.Store.Driver)
		return
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Store.PostgresDSN, cfg.Store.ConnectTimeout)
	if err != nil {
		logg.Fatalw("connect db", "error", err)
	}
	defer pool.Close()

	if *down {
		if err := migrate.Rollback(ctx, pool); err != nil {
			logg.Fatalw("rollback migrations", "error", err)
		}
		logg.Infow("migrations rolled back")
		return
	}

	if err := migrate.Apply(ctx, pool); err != nil {
		logg.Fatalw("apply migrations", "error", err)
	}
	logg.Infow("migrations applied")
}
