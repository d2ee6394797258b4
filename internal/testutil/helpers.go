// Package testutil provides test helpers and utilities for lectern tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTempFile writes content to a file in the specified directory.
func WriteTempFile(t *testing.T, dir, filename, content string) string {
	t.Helper()

	path := filepath.Join(dir, filename)
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err, "failed to write temp file: %s", filename)

	return path
}

// WriteDeckFile writes the deck built by b to a temporary YAML file.
func WriteDeckFile(t *testing.T, b *DeckBuilder) string {
	t.Helper()
	return WriteTempFile(t, t.TempDir(), "deck.yaml", b.YAML(t))
}
