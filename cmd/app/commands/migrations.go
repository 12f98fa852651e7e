package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// migrationSource maps a database driver to its migrations directory and the
// URL golang-migrate expects for it.
func migrationSource(driver, connectionString string) (path, databaseURL string, err error) {
	switch driver {
	case "postgres":
		return "file://migrations/postgresql", connectionString, nil
	case "mysql":
		// go-sql-driver DSNs carry no scheme.
		return "file://migrations/mysql", "mysql://" + connectionString, nil
	default:
		return "", "", fmt.Errorf("unsupported driver %q", driver)
	}
}

// RunMigrations migrates the accounts schema. steps == 0 applies every pending
// migration; a positive or negative value moves that many versions up or down.
// The memory driver has nothing to migrate.
func RunMigrations(logger *slog.Logger, driver, connectionString string, steps int) error {
	if driver == "memory" {
		logger.Info("memory driver selected, no migrations to run")
		return nil
	}

	path, databaseURL, err := migrationSource(driver, connectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	logger.Info("running database migrations", slog.String("driver", driver), slog.Int("steps", steps))

	m, err := migrate.New(path, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if steps == 0 {
		err = m.Up()
	} else {
		err = m.Steps(steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Info("migrations completed, schema is empty")
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	default:
		logger.Info("migrations completed", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	}
	return nil
}
