//go:build integration

package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestRepo initializes a fresh repository with a configured identity
// and returns its path together with a ready client.
func setupTestRepo(t *testing.T) (Client, string) {
	t.Helper()

	c, err := NewClient()
	require.NoError(t, err, "git must be installed for integration tests")

	path := filepath.Join(t.TempDir(), "repo")
	ctx := context.Background()

	require.NoError(t, c.Init(ctx, InitParams{Path: path, InitialBranch: "main"}))
	require.NoError(t, c.ConfigSet(ctx, path, "user.name", "Test User", ScopeLocal))
	require.NoError(t, c.ConfigSet(ctx, path, "user.email", "test@example.com", ScopeLocal))

	return c, path
}

// writeTestFile creates a file inside the repository.
func writeTestFile(t *testing.T, repoPath, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0600))
}
