package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies all pending migrations from migrationsPath and
// returns the resulting schema version.
func RunMigrations(dsn string, migrationsPath string) (uint, error) {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		dsn,
	)
	if err != nil {
		return 0, fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration up: %w", err)
	}
	return schemaVersion(m)
}

type versioner interface {
	Version() (uint, bool, error)
}

// schemaVersion reads the applied schema version. An empty migrations dir
// leaves no version record at all; that is version 0, not a failure.
func schemaVersion(m versioner) (uint, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("migration version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("migration left dirty at version %d", version)
	}
	return version, nil
}
