// Package migrations aplica o schema das fontes SQL com golang-migrate
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	dbconn "github.com/vfg2006/autosales-dashboard/infrastructure/database"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationsFS embed.FS

// Run aplica as migrations pendentes. Abre uma conexão própria porque
// migrate.Close encerra o banco recebido.
func Run(driver, dsn string) error {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("abrir banco para migrations: %w", err)
	}
	defer db.Close()

	var instance database.Driver
	switch driver {
	case dbconn.DriverPostgres:
		instance, err = postgres.WithInstance(db, &postgres.Config{})
	case dbconn.DriverSQLite:
		instance, err = sqlite.WithInstance(db, &sqlite.Config{})
	default:
		return fmt.Errorf("driver de migration não suportado: %s", driver)
	}
	if err != nil {
		return fmt.Errorf("criar driver %s: %w", driver, err)
	}

	source, err := iofs.New(migrationsFS, driver)
	if err != nil {
		return fmt.Errorf("criar source iofs: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		return fmt.Errorf("criar instância migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("executar migrations: %w", err)
	}

	return nil
}
