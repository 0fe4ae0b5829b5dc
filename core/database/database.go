package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// IDatabase is the access surface shared by every repository. Both the
// postgres and sqlite backends satisfy it through the same sqlx wrapper.
type IDatabase interface {
	ExecContext(ctx context.Context, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
	Rebind(query string) string
	DriverName() string
	Close() error
	SQLx() *sqlx.DB
}

type Database struct {
	db   *sql.DB
	sqlx *sqlx.DB
}

func (d *Database) ExecContext(ctx context.Context, query string, args ...any) error {
	_, err := d.sqlx.ExecContext(ctx, d.sqlx.Rebind(query), args...)
	return err
}

func (d *Database) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.sqlx.GetContext(ctx, dest, d.sqlx.Rebind(query), args...)
}

func (d *Database) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.sqlx.SelectContext(ctx, dest, d.sqlx.Rebind(query), args...)
}

func (d *Database) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.db.QueryRowContext(ctx, d.sqlx.Rebind(query), args...)
}

func (d *Database) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.db.QueryContext(ctx, d.sqlx.Rebind(query), args...)
}

func (d *Database) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return d.sqlx.BeginTxx(ctx, opts)
}

func (d *Database) Rebind(query string) string {
	return d.sqlx.Rebind(query)
}

func (d *Database) DriverName() string {
	return d.sqlx.DriverName()
}

func (d *Database) Close() error {
	return d.sqlx.Close()
}

func (d *Database) SQLx() *sqlx.DB {
	return d.sqlx
}
