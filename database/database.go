package database

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/ray-remotestate/bistro/config"
)

// Bistro is the shared connection pool. Handlers never touch it directly for
// queries; they draw a per-request transaction via Begin.
var Bistro *sql.DB

//go:embed migrations/*.sql
var migrationFS embed.FS

func ConnectAndMigrate(cfg *config.Config) error {
	db, err := sql.Open("postgres", cfg.DatabaseURI)
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return err
	}

	Bistro = db
	return migrateUp(db)
}

func migrateUp(db *sql.DB) error {
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Begin opens the unit of work for one request. The caller commits on success
// and must defer a rollback.
func Begin() (*sql.Tx, error) {
	return Bistro.Begin()
}

func Shutdown() error {
	return Bistro.Close()
}
