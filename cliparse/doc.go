// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p            Server port (default: 3318)
	-s            Catalog source: builtin, file, database (default: builtin)
	-f            Catalog YAML file
	-d            Database URL
	-t            Database type: sqlite, postgres (default: sqlite)
	-seed-db      Seed an empty database with the built-in catalog
	-cors-origin  Allowed CORS origin (default: request origin)

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	CATALOG_SOURCE → -s
	CATALOG_FILE   → -f
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SEED_DATABASE  → -seed-db
	CORS_ORIGIN    → -cors-origin

CLI flags take precedence over environment variables. LoadDotEnv reads
a .env file into the environment first, leaving variables that are
already set untouched.

# Validation

  - The file source needs CATALOG_FILE
  - The database source needs DATABASE_URL
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
