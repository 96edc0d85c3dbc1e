// Package store picks a state store implementation from configuration.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"pocketpet/internal/adapter/store/gormstore"
	"pocketpet/internal/adapter/store/memory"
	"pocketpet/internal/adapter/store/sqlitestore"
	"pocketpet/internal/app/ports"
	"pocketpet/internal/config"
)

// Open builds the store named by cfg.Store. The returned close func is never nil.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (ports.StateStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Store {
	case config.StoreMemory:
		return memory.NewStore(), noop, nil

	case config.StoreSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, noop, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		s, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using sqlite store", "path", cfg.SQLitePath)
		return s, s.Close, nil

	case config.StorePostgres:
		db, err := gormstore.OpenPostgres(cfg.DSN)
		if err != nil {
			return nil, noop, err
		}
		if cfg.MigrationsDir != "" {
			applied, err := gormstore.ApplyMigrations(ctx, db, cfg.MigrationsDir)
			if err != nil {
				return nil, noop, fmt.Errorf("apply migrations: %w", err)
			}
			logger.Info("migrations applied", "dir", cfg.MigrationsDir, "versions", applied)
		}
		closeDB := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		logger.Info("using postgres store")
		return gormstore.NewStore(db), closeDB, nil

	default:
		return nil, noop, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
