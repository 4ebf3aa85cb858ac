//go:build integration

package client

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lerenn/gitwrap/pkg/parser"
)

func TestIntegration_InitAndActiveBranch(t *testing.T) {
	c, path := setupTestRepo(t)
	ctx := context.Background()

	branch, err := c.ActiveBranch(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestIntegration_InitTwiceFails(t *testing.T) {
	c, path := setupTestRepo(t)

	err := c.Init(context.Background(), InitParams{Path: path})
	assert.ErrorIs(t, err, ErrPathConflict)
}

func TestIntegration_Open(t *testing.T) {
	c, path := setupTestRepo(t)

	toplevel, err := c.Open(context.Background(), path)
	require.NoError(t, err)
	assert.NotEmpty(t, toplevel)
}

func TestIntegration_AddCommitLog(t *testing.T) {
	c, path := setupTestRepo(t)
	ctx := context.Background()

	writeTestFile(t, path, "a.txt", "hello\n")
	require.NoError(t, c.Add(ctx, path, AddParams{Paths: []string{"a.txt"}}))
	require.NoError(t, c.Commit(ctx, path, CommitParams{Message: "initial"}))

	iter, err := c.ListCommits(ctx, path, LogParams{})
	require.NoError(t, err)

	record, err := iter.Next()
	require.NoError(t, err)
	assert.Equal(t, "initial", record.Message)
	assert.Equal(t, "Test User", record.Author.Name)
	assert.Equal(t, "test@example.com", record.Author.Email)
	assert.False(t, record.Date.IsZero())

	_, err = iter.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestIntegration_CommitWithNothingStaged(t *testing.T) {
	c, path := setupTestRepo(t)
	ctx := context.Background()

	writeTestFile(t, path, "a.txt", "hello\n")
	require.NoError(t, c.Add(ctx, path, AddParams{Paths: []string{"a.txt"}}))
	require.NoError(t, c.Commit(ctx, path, CommitParams{Message: "initial"}))

	err := c.Commit(ctx, path, CommitParams{Message: "empty"})
	require.ErrorIs(t, err, ErrNothingToCommit)
	assert.ErrorIs(t, err, parser.ErrOperationRejected)
}

func TestIntegration_MoveReflectedInTracking(t *testing.T) {
	c, path := setupTestRepo(t)
	ctx := context.Background()

	writeTestFile(t, path, "a.txt", "hello\n")
	require.NoError(t, c.Add(ctx, path, AddParams{Paths: []string{"a.txt"}}))
	require.NoError(t, c.Commit(ctx, path, CommitParams{Message: "initial"}))

	require.NoError(t, c.Move(ctx, path, MoveParams{Source: "a.txt", Destination: "b.txt"}))
	require.NoError(t, c.Commit(ctx, path, CommitParams{Message: "rename a.txt to b.txt"}))

	iter, err := c.ListCommits(ctx, path, LogParams{})
	require.NoError(t, err)

	latest, err := iter.Next()
	require.NoError(t, err)
	assert.Equal(t, "rename a.txt to b.txt", latest.Message)
}

func TestIntegration_ListCommitsEmptyRepository(t *testing.T) {
	c, path := setupTestRepo(t)

	iter, err := c.ListCommits(context.Background(), path, LogParams{})
	require.NoError(t, err)

	_, err = iter.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestIntegration_ConfigRoundTrip(t *testing.T) {
	c, path := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, c.ConfigSet(ctx, path, "gitwrap.test-key", "some value", ScopeLocal))

	value, err := c.ConfigGet(ctx, path, "gitwrap.test-key", ScopeLocal)
	require.NoError(t, err)
	assert.Equal(t, "some value", value)
}

func TestIntegration_BranchesAndSwitch(t *testing.T) {
	c, path := setupTestRepo(t)
	ctx := context.Background()

	writeTestFile(t, path, "a.txt", "hello\n")
	require.NoError(t, c.Add(ctx, path, AddParams{Paths: []string{"a.txt"}}))
	require.NoError(t, c.Commit(ctx, path, CommitParams{Message: "initial"}))

	require.NoError(t, c.Branch(ctx, path, "feature", ""))

	branches, err := c.ListBranches(ctx, path)
	require.NoError(t, err)
	require.Len(t, branches, 2)

	// Idempotence: a second listing with no mutation in between is
	// identical, order included.
	again, err := c.ListBranches(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, branches, again)

	require.NoError(t, c.Switch(ctx, path, SwitchParams{Branch: "feature"}))

	branch, err := c.ActiveBranch(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "feature", branch)
}

func TestIntegration_Tags(t *testing.T) {
	c, path := setupTestRepo(t)
	ctx := context.Background()

	writeTestFile(t, path, "a.txt", "hello\n")
	require.NoError(t, c.Add(ctx, path, AddParams{Paths: []string{"a.txt"}}))
	require.NoError(t, c.Commit(ctx, path, CommitParams{Message: "initial"}))

	require.NoError(t, c.Tag(ctx, path, TagParams{Name: "v0.1.0"}))
	require.NoError(t, c.Tag(ctx, path, TagParams{Name: "v0.2.0", Annotated: true, Message: "release"}))

	tags, err := c.ListTags(ctx, path)
	require.NoError(t, err)
	require.Len(t, tags, 2)

	// Annotated tags dereference to the same commit the lightweight tag
	// points at.
	assert.Equal(t, tags[0].Target, tags[1].Target)
}

func TestIntegration_CloneFromLocalRepository(t *testing.T) {
	c, path := setupTestRepo(t)
	ctx := context.Background()

	writeTestFile(t, path, "a.txt", "hello\n")
	require.NoError(t, c.Add(ctx, path, AddParams{Paths: []string{"a.txt"}}))
	require.NoError(t, c.Commit(ctx, path, CommitParams{Message: "initial"}))

	target := t.TempDir() + "/clone"
	require.NoError(t, c.Clone(ctx, CloneParams{URL: path, TargetPath: target}))

	iter, err := c.ListCommits(ctx, target, LogParams{})
	require.NoError(t, err)

	record, err := iter.Next()
	require.NoError(t, err)
	assert.Equal(t, "initial", record.Message)
}

func TestIntegration_MultiLineCommitMessage(t *testing.T) {
	c, path := setupTestRepo(t)
	ctx := context.Background()

	message := "subject line\n\nbody first line\nbody second line"
	writeTestFile(t, path, "a.txt", "hello\n")
	require.NoError(t, c.Add(ctx, path, AddParams{Paths: []string{"a.txt"}}))
	require.NoError(t, c.Commit(ctx, path, CommitParams{Message: message}))

	iter, err := c.ListCommits(ctx, path, LogParams{})
	require.NoError(t, err)

	record, err := iter.Next()
	require.NoError(t, err)
	assert.Equal(t, message, record.Message)
}
