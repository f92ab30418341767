// Package db owns database connections, dialect selection and schema
// initialization for the registry store.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "github.com/mattn/go-sqlite3"
)

// Dialect identifies the SQL flavor of an open connection.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories run against a Querier so the same code serves both
// direct calls and calls inside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB wraps sql.DB with the dialect it was opened against.
type DB struct {
	*sql.DB
	dialect Dialect
}

// Open connects to the database named by dsn. DSNs with a postgres://
// or postgresql:// scheme open a Postgres connection via pgx; anything
// else is treated as a SQLite file path (":memory:" included).
func Open(dsn string) (*DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		conn, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return &DB{DB: conn, dialect: DialectPostgres}, nil
	}

	if dir := filepath.Dir(dsn); dsn != ":memory:" && dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return &DB{DB: conn, dialect: DialectSQLite}, nil
}

// Dialect returns the SQL flavor of the connection.
func (d *DB) Dialect() Dialect { return d.dialect }

// Rebind converts ?-style placeholders to the dialect's native form.
// Queries in this codebase never embed literal question marks.
func (d *DB) Rebind(query string) string {
	if d.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// InitSchema applies the authoritative schema for the dialect.
// Statements are idempotent (CREATE TABLE IF NOT EXISTS).
func (d *DB) InitSchema(ctx context.Context) error {
	for _, stmt := range SplitStatements(GetSchemaSQL(d.dialect)) {
		if _, err := d.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// WithTx runs fn inside a transaction, committing on nil and rolling
// back on error. This is the sole concurrency discipline of the
// registry: atomicity is delegated to the store's transaction manager.
func (d *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (after: %w)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Ping issues a trivial round trip against the store. Used by the
// liveness and readiness probes.
func (d *DB) Ping(ctx context.Context) error {
	var one int
	if err := d.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("db_error: %w", err)
	}
	return nil
}
