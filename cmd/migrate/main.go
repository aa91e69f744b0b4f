package main

import (
	"log/slog"
	"os"

	itemmigrations "github.com/ghuser/itemstore/migrations/item"
	"github.com/ghuser/itemstore/pkg/config"
	"github.com/ghuser/itemstore/pkg/migrator"
)

// Applies all pending goose migrations and exits.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dbCfg := cfg.Database()
	if err := migrator.RunMigrations(dbCfg.URL(), dbCfg.MigrationTable, itemmigrations.FS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied", "version_table", dbCfg.MigrationTable)
}
