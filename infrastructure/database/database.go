// Package database reúne a conexão SQL compartilhada pelos drivers postgres e sqlite
package database

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
)

// Drivers suportados
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Queryer é o subconjunto de *sql.DB e *sql.Tx usado pelos repositórios
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
	Placeholder() squirrel.PlaceholderFormat
}

type Connection struct {
	*sql.DB
	driver string
}

var _ Conn = (*Connection)(nil)

func NewConnection(db *sql.DB, driver string) *Connection {
	return &Connection{DB: db, driver: driver}
}

func (c *Connection) Driver() string {
	return c.driver
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Placeholder retorna o formato de parâmetros do driver: $1 no postgres, ? no sqlite
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	if c.driver == DriverPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

// RunInTransaction executa fn dentro de uma transação
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}

	return tx.Commit()
}
