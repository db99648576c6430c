package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/vfg2006/autosales-dashboard/infrastructure/database"
)

// NewConnection abre o arquivo sqlite. Com uma única conexão aberta as escritas
// não disputam o lock do arquivo.
func NewConnection(ctx context.Context, path string) (*database.Connection, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configurar sqlite: %w", err)
	}

	return database.NewConnection(db, database.DriverSQLite), nil
}
