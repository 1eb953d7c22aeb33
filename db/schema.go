// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-quote/cliparse"
)

// Open connects to a sqlite or postgres database and verifies the connection
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case cliparse.DatabaseSQLite:
		driver = "sqlite"
	case cliparse.DatabasePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates the catalog tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// placeholders returns n bind markers in the dialect of dbType
func placeholders(dbType string, n int) string {
	marks := make([]string, n)
	for i := range marks {
		if dbType == cliparse.DatabasePostgres {
			marks[i] = "$" + strconv.Itoa(i+1)
		} else {
			marks[i] = "?"
		}
	}
	return strings.Join(marks, ", ")
}

// exec is the subset of *sql.DB and *sql.Tx used when writing
type exec interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const schema = `
-- Topics, in display order
CREATE TABLE IF NOT EXISTS topic (
    name TEXT PRIMARY KEY,
    position INTEGER NOT NULL
);

-- Quotes, in catalog order within a topic
CREATE TABLE IF NOT EXISTS quote (
    topic TEXT NOT NULL REFERENCES topic(name) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    body TEXT NOT NULL,
    PRIMARY KEY (topic, position)
);

CREATE INDEX IF NOT EXISTS idx_topic_position ON topic(position);
`
