package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"records-api/internal/app"
	"records-api/internal/config"
	"records-api/internal/httpserver"
	"records-api/internal/logger"
	"records-api/internal/metrics"
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

	srv, err := httpserver.New(cfg.HTTP, cfg.API, logg, services.Deps(store, metrics.New()))
	if err != nil {
		logg.Fatalw("init server", "error", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logg.Infow("starting http server", "addr", cfg.HTTP.Addr, "store", store.Driver, "prefix", cfg.API.Prefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logg.Infow("received signal, shutting down", "signal", sig.String())
	case err := <-serverErr:
		logg.Errorw("server error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logg.Errorw("graceful shutdown failed", "error", err)
	} else {
		logg.Infow("server stopped")
	}
}
