// Package migrate applies the embedded schema migrations.
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"apparel/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Apply runs all pending migrations up.
func Apply(ctx context.Context, sqlDB *sql.DB) error {
	m, err := newMigrator(ctx, sqlDB)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(err, "migrate up (every version needs both .up.sql and .down.sql)")
		}

		return errors.Wrap(err, "migrate up")
	}

	return nil
}

// Rollback reverts the last steps migrations.
func Rollback(ctx context.Context, sqlDB *sql.DB, steps int) error {
	if steps <= 0 {
		return errors.New("rollback steps must be positive")
	}

	m, err := newMigrator(ctx, sqlDB)
	if err != nil {
		return err
	}

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migrate down")
	}

	return nil
}

// Version reports the applied schema version and whether it is dirty.
func Version(ctx context.Context, sqlDB *sql.DB) (uint, bool, error) {
	m, err := newMigrator(ctx, sqlDB)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	return version, dirty, errors.Wrap(err, "read migration version")
}

func newMigrator(ctx context.Context, sqlDB *sql.DB) (*migrate.Migrate, error) {
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "ping sql db")
	}

	srcDriver, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "init iofs")
	}

	dbDriver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "init db driver")
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return nil, errors.Wrap(err, "init migrate")
	}

	return m, nil
}
