package storage

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/zamm-dev/navedit/internal/logging"
	"github.com/zamm-dev/navedit/internal/models"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// newMigrator reads the embedded migrations and tracks versions inside db.
// The returned closer releases the migration source only: closing the
// migrator itself would close db through the sqlite driver.
func newMigrator(db *sql.DB) (*migrate.Migrate, func(), error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to create source driver", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		_ = source.Close()
		return nil, nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to create database driver", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		_ = source.Close()
		return nil, nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to create migrate instance", err)
	}
	return m, func() { _ = source.Close() }, nil
}

// migrationVersion returns the applied version, 0 for a fresh database
func migrationVersion(db *sql.DB) (uint, bool, error) {
	m, done, err := newMigrator(db)
	if err != nil {
		return 0, false, err
	}
	defer done()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to get migration version", err)
	}
	return version, dirty, nil
}

// runMigrations brings the schema up to the latest embedded version
func runMigrations(db *sql.DB) error {
	m, done, err := newMigrator(db)
	if err != nil {
		return err
	}
	defer done()

	current, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to get migration version", err)
	}
	if dirty {
		return models.NewNavError(models.ErrTypeStorage, "database is in dirty state, manual intervention required")
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to run migrations", err)
	}

	latest, _, err := m.Version()
	if err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to get migration version", err)
	}
	logging.Info(logging.SubsystemStorage, "database migrated from version %d to %d", current, latest)
	return nil
}
