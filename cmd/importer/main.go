package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"records-api/internal/app"
	"records-api/internal/config"
	"records-api/internal/importer"
	"records-api/internal/logger"
	"records-api/internal/storage"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a team roster or composer CSV file")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logg, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	kind, err := detect(filePath)
	if err != nil {
		logg.Fatalw("detect file kind", "file", filePath, "error", err)
	}

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

	f, err := os.Open(filePath)
	if err != nil {
		logg.Fatalw("open file", "file", filePath, "error", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, services.Teams, services.Composers)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logg.Fatalw("import failed", "file", filePath, "imported", count, "error", err)
	}

	fmt.Printf("Imported %d %s in %s\n", count, kind, time.Since(start).Truncate(time.Millisecond))
}

func detect(path string) (importer.Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return importer.DetectKind(f)
}
