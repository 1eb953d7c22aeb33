// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/quickly-quote/quotes"
)

// SeedCatalog writes catalog into an empty database in one transaction.
// It does nothing when topics already exist and reports whether it wrote.
func SeedCatalog(ctx context.Context, db *sql.DB, dbType string, catalog *quotes.Catalog) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM topic`).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count topics: %w", err)
	}
	if count > 0 {
		slog.Info("catalog already seeded", "topics", count)
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertTopics(ctx, tx, dbType, catalog.TopicList()); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}

	slog.Info("catalog seeded", "topics", len(catalog.Topics()))
	return true, nil
}

func insertTopics(ctx context.Context, x exec, dbType string, topics []quotes.Topic) error {
	topicSQL := `INSERT INTO topic (name, position) VALUES (` + placeholders(dbType, 2) + `)`
	quoteSQL := `INSERT INTO quote (topic, position, body) VALUES (` + placeholders(dbType, 3) + `)`

	for i, t := range topics {
		if _, err := x.ExecContext(ctx, topicSQL, t.Name, i); err != nil {
			return fmt.Errorf("failed to insert topic %q: %w", t.Name, err)
		}
		for j, body := range t.Quotes {
			if _, err := x.ExecContext(ctx, quoteSQL, t.Name, j, body); err != nil {
				return fmt.Errorf("failed to insert quote %d of %q: %w", j, t.Name, err)
			}
		}
	}
	return nil
}

// LoadCatalog reads every topic and quote and builds a validated catalog.
// Topics without quotes are skipped by the join; a missing general topic
// surfaces as quotes.ErrMissingGeneral.
func LoadCatalog(ctx context.Context, db *sql.DB) (*quotes.Catalog, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT t.name, q.body
		FROM topic t
		JOIN quote q ON q.topic = t.name
		ORDER BY t.position, q.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var topics []quotes.Topic
	for rows.Next() {
		var name, body string
		if err := rows.Scan(&name, &body); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		if len(topics) == 0 || topics[len(topics)-1].Name != name {
			topics = append(topics, quotes.Topic{Name: name})
		}
		last := &topics[len(topics)-1]
		last.Quotes = append(last.Quotes, body)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	catalog, err := quotes.NewCatalog(topics)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog in database: %w", err)
	}
	return catalog, nil
}
