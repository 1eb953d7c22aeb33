// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Quote server.

Quickly Quote serves up to three random quotes for a chosen topic
(success, failure, happy, sad, anxious, joy, adventure), falling back
to the general bucket when no topic matches.

# Starting the Server

With the built-in catalog:

	go run .

With a YAML catalog or a database:

	go run . -s file -f quotes.yaml
	go run . -s database -t sqlite -d "file:quotes.db" -seed-db
	DATABASE_URL=postgres://... CATALOG_SOURCE=database DATABASE_TYPE=postgres go run .

A .env file in the working directory is loaded first if present.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - CATALOG_SOURCE (-s): builtin, file or database (default: builtin)
  - CATALOG_FILE (-f): YAML catalog path
  - DATABASE_URL (-d), DATABASE_TYPE (-t): catalog database
  - SEED_DATABASE (-seed-db): seed an empty database with the built-in catalog
  - CORS_ORIGIN (-cors-origin): allowed origin

The catalog is loaded once at start-up and never changes afterwards.

# Architecture

  - quotes: Catalog, Fisher–Yates selection, built-in catalog
  - db: SQLite/PostgreSQL catalog source
  - handlers: HTTP request handlers (topics, quotes, page)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - cliparse: Configuration parsing

The cmd/quotes command prints a selection in the terminal.
*/
package main
