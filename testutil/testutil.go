// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quickly-quote/cliparse"
	"github.com/danielhkuo/quickly-quote/db"
	"github.com/danielhkuo/quickly-quote/quotes"
)

// HappyQuotes is the ten-entry "happy" bucket of TestCatalog
var HappyQuotes = []string{
	"happy one", "happy two", "happy three", "happy four", "happy five",
	"happy six", "happy seven", "happy eight", "happy nine", "happy ten",
}

// GeneralQuotes is the "general" bucket of TestCatalog
var GeneralQuotes = []string{
	"general one", "general two", "general three", "general four", "general five",
}

// TestCatalog returns a small catalog: happy (10), pair (2), general (5)
func TestCatalog(t *testing.T) *quotes.Catalog {
	t.Helper()

	c, err := quotes.NewCatalog([]quotes.Topic{
		{Name: "happy", Quotes: HappyQuotes},
		{Name: "pair", Quotes: []string{"pair one", "pair two"}},
		{Name: "general", Quotes: GeneralQuotes},
	})
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return c
}

// TestSelector wraps TestCatalog with the default random source
func TestSelector(t *testing.T) *quotes.Selector {
	t.Helper()
	return quotes.NewSelector(TestCatalog(t), nil)
}

// SetupTestDB creates a SQLite database in a temp dir with the schema applied
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, "file:"+filepath.Join(t.TempDir(), "quotes.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// SeedTestDB seeds conn with catalog
func SeedTestDB(t *testing.T, conn *sql.DB, catalog *quotes.Catalog) {
	t.Helper()
	if _, err := db.SeedCatalog(context.Background(), conn, cliparse.DatabaseSQLite, catalog); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		CatalogSource: cliparse.SourceBuiltin,
		DatabaseType:  cliparse.DatabaseSQLite,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertDistinctFrom checks that got holds no repeats and only members of source
func AssertDistinctFrom(t *testing.T, got, source []string) {
	t.Helper()

	allowed := make(map[string]bool, len(source))
	for _, q := range source {
		allowed[q] = true
	}

	seen := make(map[string]bool, len(got))
	for _, q := range got {
		if !allowed[q] {
			t.Errorf("Quote %q is not in the source list", q)
		}
		if seen[q] {
			t.Errorf("Quote %q repeated", q)
		}
		seen[q] = true
	}
}
