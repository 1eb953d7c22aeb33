// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-quote/quotes"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Open("sqlite", "file:"+filepath.Join(t.TempDir(), "quotes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, CreateSchema(conn))
	return conn
}

func TestOpen_UnsupportedType(t *testing.T) {
	_, err := Open("mysql", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := setupTestDB(t)
	require.NoError(t, CreateSchema(conn))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?, ?, ?", placeholders("sqlite", 3))
	assert.Equal(t, "$1, $2", placeholders("postgres", 2))
}

func TestSeedAndLoadCatalog(t *testing.T) {
	ctx := context.Background()
	conn := setupTestDB(t)

	seeded, err := SeedCatalog(ctx, conn, "sqlite", quotes.Default())
	require.NoError(t, err)
	assert.True(t, seeded)

	loaded, err := LoadCatalog(ctx, conn)
	require.NoError(t, err)

	assert.Equal(t, quotes.Default().Topics(), loaded.Topics())
	for _, topic := range loaded.Topics() {
		want, _ := quotes.Default().Quotes(topic)
		got, _ := loaded.Quotes(topic)
		assert.Equal(t, want, got, "topic %q", topic)
	}
}

func TestSeedCatalog_OnlyOnce(t *testing.T) {
	ctx := context.Background()
	conn := setupTestDB(t)

	small, err := quotes.NewCatalog([]quotes.Topic{
		{Name: "general", Quotes: []string{"first"}},
	})
	require.NoError(t, err)

	seeded, err := SeedCatalog(ctx, conn, "sqlite", small)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = SeedCatalog(ctx, conn, "sqlite", quotes.Default())
	require.NoError(t, err)
	assert.False(t, seeded)

	loaded, err := LoadCatalog(ctx, conn)
	require.NoError(t, err)
	assert.Equal(t, []string{"general"}, loaded.Topics())
}

func TestLoadCatalog_EmptyDatabase(t *testing.T) {
	conn := setupTestDB(t)

	_, err := LoadCatalog(context.Background(), conn)
	require.ErrorIs(t, err, quotes.ErrMissingGeneral)
}

func TestLoadCatalog_TopicWithoutQuotesIsSkipped(t *testing.T) {
	ctx := context.Background()
	conn := setupTestDB(t)

	_, err := conn.Exec(`INSERT INTO topic (name, position) VALUES ('general', 0), ('empty', 1)`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO quote (topic, position, body) VALUES ('general', 0, 'Keep going.')`)
	require.NoError(t, err)

	loaded, err := LoadCatalog(ctx, conn)
	require.NoError(t, err)
	assert.Equal(t, []string{"general"}, loaded.Topics())
	assert.False(t, loaded.Has("empty"))
}
