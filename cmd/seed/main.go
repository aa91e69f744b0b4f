package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ghuser/itemstore/pkg/config"
	"github.com/ghuser/itemstore/pkg/database"
	"github.com/ghuser/itemstore/pkg/logger"
	"github.com/ghuser/itemstore/services/item/application/services"
	"github.com/ghuser/itemstore/services/item/infrastructure/persistence/postgres"
)

// Seeds the item table with a batch of test rows. Runs the same service and
// repository path as the API, without the event bus or cache.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database().URL(), log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewItemRepository(pool, nil)
	svc := services.NewItemService(repo, nil)

	if err := services.NewSeeder(svc, log).Run(ctx); err != nil {
		log.Error("seed run failed", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("seed run complete", "count", services.SeedCount)
}
