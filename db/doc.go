// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores the quote catalog in SQLite or PostgreSQL.

The database is only a catalog source: it is read once at start-up and
the resulting quotes.Catalog never changes afterwards.

# Connecting

	conn, err := db.Open("sqlite", "file:quotes.db")
	conn, err := db.Open("postgres", "postgres://...")

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - topic: topic name and display position
  - quote: quote text, keyed by (topic, position)

	topic 1──* quote

# Seeding and Loading

	seeded, err := db.SeedCatalog(ctx, conn, "sqlite", quotes.Default())
	catalog, err := db.LoadCatalog(ctx, conn)

SeedCatalog only writes into an empty topic table.
*/
package db
