// Package db opens the local key-value database: SQLite by default, or
// Postgres when a connection URL is configured.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Dialect names the SQL flavor behind a connection
type Dialect string

// Supported dialects
const (
	Postgres Dialect = "pgx"
	SQLite   Dialect = "sqlite"
)

// Database wraps the connection together with its dialect
type Database struct {
	*sql.DB
	Dialect Dialect
}

// schema is valid for both SQLite and Postgres
const schema = `
CREATE TABLE IF NOT EXISTS visitor_preferences (
	visitor_id TEXT NOT NULL,
	pref_key   TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (visitor_id, pref_key)
)`

// Open connects to Postgres when databaseURL is set, otherwise to the SQLite
// file at sqlitePath, and creates the schema
func Open(ctx context.Context, databaseURL, sqlitePath string, logger *zap.Logger) (*Database, error) {
	dialect, dsn := Postgres, databaseURL
	if databaseURL == "" {
		dialect, dsn = SQLite, sqlitePath
		if dir := filepath.Dir(sqlitePath); dir != "." && sqlitePath != ":memory:" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	conn, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if dialect == SQLite {
		// SQLite allows a single writer
		conn.SetMaxOpenConns(1)
	}

	// Test the connection
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info("database connection established", zap.String("dialect", string(dialect)))
	return &Database{DB: conn, Dialect: dialect}, nil
}

// Rebind rewrites $N placeholders to ? for SQLite; Postgres queries pass through
func (d *Database) Rebind(query string) string {
	if d.Dialect != SQLite {
		return query
	}

	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		if query[i] != '$' {
			b.WriteByte(query[i])
			continue
		}
		j := i + 1
		for j < len(query) && query[j] >= '0' && query[j] <= '9' {
			j++
		}
		if _, err := strconv.Atoi(query[i+1 : j]); err != nil {
			b.WriteByte(query[i])
			continue
		}
		b.WriteByte('?')
		i = j - 1
	}
	return b.String()
}

// Close closes the database connection
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
