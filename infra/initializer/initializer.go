package initializer

import (
	"fmt"
	"log/slog"

	"github.com/briancito0432-afk/gestomoney-proyect/infra"
	"github.com/briancito0432-afk/gestomoney-proyect/infra/repository/memory"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/app"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/config"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository"
)

// InitializeDependencies builds the logger and the unit of work selected by
// cfg.DB.Driver. The returned cleanup releases the database pool.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	cleanup func(),
	err error,
) {
	logger := setupLogger(cfg.Log)
	uow, cleanup, err := OpenUnitOfWork(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", "driver", cfg.DB.Driver, "error", err)
		return nil, nil, err
	}
	return &app.Deps{Uow: uow, Logger: logger}, cleanup, nil
}

// OpenUnitOfWork connects the configured storage driver, migrating the
// Postgres schema first when cfg.DB.Migrate is set.
func OpenUnitOfWork(cfg *config.App, logger *slog.Logger) (repository.UnitOfWork, func(), error) {
	switch cfg.DB.Driver {
	case config.DriverMemory:
		logger.Warn("Using in-memory storage; data is lost on exit")
		return memory.New(), func() {}, nil
	case config.DriverPostgres:
		db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		if cfg.DB.Migrate {
			logger.Info("Applying database migrations")
			if err := infra.RunMigrations(db, infra.MigrateUp); err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
		}
		return infra.NewUoW(db), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.DB.Driver)
	}
}
