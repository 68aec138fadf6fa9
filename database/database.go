package database

import (
	"embed"
	"errors"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Connect opens and pings the Postgres database.
func Connect(connStr string) (*sqlx.DB, error) {
	return sqlx.Connect("postgres", connStr)
}

func migrationSource() (source.Driver, error) {
	return iofs.New(migrationsFS, "migrations")
}

// Migrate applies every pending migration. An up-to-date schema is not an
// error.
func Migrate(connStr string) error {
	src, err := migrationSource()
	if err != nil {
		return err
	}

	mig, err := migrate.NewWithSourceInstance("iofs", src, connStr)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := mig.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		log.Printf("migrations: %s", err.Error())
	}
	return nil
}
