// Package migrate applies the embedded Postgres schema with golang-migrate
package migrate

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // pgx5:// driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Status is the schema version after a run
type Status struct {
	Version uint
	Dirty   bool
}

// DriverURL rewrites a postgres:// DSN to the pgx5 scheme golang-migrate expects
func DriverURL(dsn string) string {
	for _, p := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, p) {
			return "pgx5://" + strings.TrimPrefix(dsn, p)
		}
	}
	return dsn
}

func open(dsn string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("iofs source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, DriverURL(dsn))
	if err != nil {
		return nil, fmt.Errorf("migrate instance: %w", err)
	}
	return m, nil
}

// Up applies every pending migration
func Up(dsn string) (Status, error) {
	return run(dsn, func(m *migrate.Migrate) error { return m.Up() })
}

// Down rolls back one migration
func Down(dsn string) (Status, error) {
	return run(dsn, func(m *migrate.Migrate) error { return m.Steps(-1) })
}

// Version reports the current schema version without changing it
func Version(dsn string) (Status, error) {
	return run(dsn, func(*migrate.Migrate) error { return nil })
}

func run(dsn string, step func(*migrate.Migrate) error) (Status, error) {
	m, err := open(dsn)
	if err != nil {
		return Status{}, err
	}
	defer m.Close()

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return Status{}, err
	}
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, err
	}
	return Status{Version: v, Dirty: dirty}, nil
}
