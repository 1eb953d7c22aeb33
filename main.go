package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/quickly-quote/cliparse"
	"github.com/danielhkuo/quickly-quote/db"
	"github.com/danielhkuo/quickly-quote/quotes"
	"github.com/danielhkuo/quickly-quote/router"
)

func main() {
	var err error

	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	catalog, err := loadCatalog(context.Background(), cfg)
	if err != nil {
		slog.Error("catalog load failed", "source", cfg.CatalogSource, "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog ready", "source", cfg.CatalogSource, "topics", len(catalog.Topics()))

	// Create router
	handler := router.NewRouter(quotes.NewSelector(catalog, nil), cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// loadCatalog builds the catalog once from the configured source
func loadCatalog(ctx context.Context, cfg cliparse.Config) (*quotes.Catalog, error) {
	switch cfg.CatalogSource {
	case cliparse.SourceFile:
		return quotes.LoadFile(cfg.CatalogFile)
	case cliparse.SourceDatabase:
		return loadDatabaseCatalog(ctx, cfg)
	default:
		return quotes.Default(), nil
	}
}

func loadDatabaseCatalog(ctx context.Context, cfg cliparse.Config) (*quotes.Catalog, error) {
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	// The catalog is read once; the connection is not needed afterwards
	defer conn.Close()

	if err := db.CreateSchema(conn); err != nil {
		return nil, err
	}
	slog.Info("Database schema ready")

	if cfg.SeedDatabase {
		if _, err := db.SeedCatalog(ctx, conn, cfg.DatabaseType, quotes.Default()); err != nil {
			return nil, err
		}
	}

	return db.LoadCatalog(ctx, conn)
}
