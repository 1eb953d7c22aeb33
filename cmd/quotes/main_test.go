// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "topics:\n" +
		"  - name: calm\n    quotes: [c1, c2, c3, c4]\n" +
		"  - name: general\n    quotes: [g1, g2]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-list", "-catalog", writeCatalog(t)}, &out, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "calm"))
	assert.Contains(t, lines[0], "4 quotes")
	assert.Contains(t, lines[1], "2 quotes")
}

func TestRun_Topic(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-catalog", writeCatalog(t), "-topic", "CALM"}, &out, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "calm", lines[0])
	for _, l := range lines[1:] {
		assert.Contains(t, []string{"c1", "c2", "c3", "c4"}, strings.TrimSpace(l))
	}
}

func TestRun_Fallback(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-catalog", writeCatalog(t), "-topic", "nope"}, &out, false))

	assert.Contains(t, out.String(), `No quotes for "nope", showing general quotes`)
}

func TestRun_SeedIsReproducible(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, run([]string{"-topic", "joy", "-seed", "42"}, &a, false))
	require.NoError(t, run([]string{"-topic", "joy", "-seed", "42"}, &b, false))

	assert.Equal(t, a.String(), b.String())
}

func TestRun_NoEscapeCodesWhenNotTerminal(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-topic", "happy"}, &out, false))

	assert.NotContains(t, out.String(), "\x1b[")
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"-bogus"}, &out, false))
	assert.Error(t, run([]string{"-catalog", filepath.Join(t.TempDir(), "missing.yaml")}, &out, false))
}
