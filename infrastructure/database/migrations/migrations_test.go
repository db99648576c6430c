package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestRun_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrations.db")

	require.NoError(t, Run("sqlite", path))
	// Segunda execução não tem mudanças
	require.NoError(t, Run("sqlite", path))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRowContext(context.Background(),
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'sales_records'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "sales_records", name)
}

func TestRun_DriverNaoSuportado(t *testing.T) {
	err := Run("mysql", "whatever")
	assert.Error(t, err)
}
