package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/scenes/internal/app"
	"github.com/allisson/scenes/internal/config"
)

// RunMigrations executes database migrations based on the configured storage driver.
// Only the SQL backends carry a schema; the bucket and memory backends have
// nothing to migrate and are rejected.
func RunMigrations() error {
	cfg := config.Load()

	// Create container just for logger
	container := app.NewContainer(cfg)
	logger := container.Logger()

	var migrationsPath string
	switch cfg.StorageDriver {
	case "postgres":
		migrationsPath = "file://migrations/postgresql"
	case "mysql":
		migrationsPath = "file://migrations/mysql"
	default:
		return fmt.Errorf("storage driver %q has no migrations", cfg.StorageDriver)
	}

	logger.Info("running database migrations",
		slog.String("driver", cfg.StorageDriver),
	)

	m, err := migrate.New(migrationsPath, cfg.DBConnectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
