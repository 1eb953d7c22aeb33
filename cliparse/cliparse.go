// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Catalog sources
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourceDatabase = "database"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

const defaultPort = 3318

type Config struct {
	Port          int
	CatalogSource string
	CatalogFile   string
	DatabaseURL   string
	DatabaseType  string
	SeedDatabase  bool
	CORSOrigin    string
}

// LoadDotEnv loads variables from .env files without overriding ones
// already set. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return err
		}
	}
	return nil
}

// ParseFlags parses flags, falls back to env, and validates the result
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quickly-quote", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.CatalogSource, "s", "", "Catalog source (builtin, file or database)")
	fs.StringVar(&cfg.CatalogFile, "f", "", "Catalog YAML file")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.BoolVar(&cfg.SeedDatabase, "seed-db", false, "Seed an empty database with the built-in catalog")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", "", "Allowed CORS origin")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.CatalogSource == "" {
		cfg.CatalogSource = os.Getenv("CATALOG_SOURCE")
		if cfg.CatalogSource == "" {
			cfg.CatalogSource = SourceBuiltin
		}
	}
	if cfg.CatalogFile == "" {
		cfg.CatalogFile = os.Getenv("CATALOG_FILE")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if !cfg.SeedDatabase {
		if v := os.Getenv("SEED_DATABASE"); v != "" {
			seed, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid SEED_DATABASE env variable")
			}
			cfg.SeedDatabase = seed
		}
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = os.Getenv("CORS_ORIGIN")
	}

	switch cfg.CatalogSource {
	case SourceBuiltin:
	case SourceFile:
		if cfg.CatalogFile == "" {
			return Config{}, errors.New("catalog file required for file source (use -f or CATALOG_FILE env)")
		}
	case SourceDatabase:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for database source (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, errors.New("catalog source must be one of: builtin, file, database")
	}

	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	return cfg, nil
}
