package db

import (
	"embed"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	migrate "github.com/golang-migrate/migrate/v4"
	// Registers the postgres database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/vijay-heerarajan/billing-app/internal/config"
)

//go:embed migrations/postgres/*.sql
var postgresMigrations embed.FS

// migrationSource returns the embedded postgres migrations.
func migrationSource() (source.Driver, error) {
	return iofs.New(postgresMigrations, "migrations/postgres")
}

// postgresURL builds the URL form of the connection settings expected by
// golang-migrate.
func postgresURL(cfg config.DatabaseConfig) string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Path:   "/" + cfg.DBName,
	}
	if cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	} else {
		u.User = url.User(cfg.User)
	}
	if cfg.SSLMode != "" {
		q := url.Values{}
		q.Set("sslmode", cfg.SSLMode)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// runSQLMigrations applies the embedded migrations up to the latest version.
func runSQLMigrations(cfg config.DatabaseConfig) error {
	src, err := migrationSource()
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, postgresURL(cfg))
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
