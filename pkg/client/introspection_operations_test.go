//go:build unit

package client

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lerenn/gitwrap/pkg/executor"
	"github.com/lerenn/gitwrap/pkg/parser"
)

func TestClient_ListBranches(t *testing.T) {
	c, mockExec := newTestClient(t)

	mockExec.EXPECT().
		Run(gomock.Any(), "/tmp/repo", "branch", "--list", "--format", parser.BranchListFormat).
		Return(executor.Result{
			ExitCode: 0,
			Stdout:   "main\x1f*\x1forigin/main\nfeature\x1f \x1f\n",
		}, nil)

	branches, err := c.ListBranches(context.Background(), "/tmp/repo")
	require.NoError(t, err)

	require.Len(t, branches, 2)
	assert.Equal(t, "main", branches[0].Name)
	assert.True(t, branches[0].IsActive)
	assert.Equal(t, "origin/main", branches[0].Upstream)
	assert.False(t, branches[1].IsActive)
}

func TestClient_ListBranches_UnparseableOutput(t *testing.T) {
	c, mockExec := newTestClient(t)

	mockExec.EXPECT().
		Run(gomock.Any(), "/tmp/repo", "branch", "--list", "--format", parser.BranchListFormat).
		Return(executor.Result{ExitCode: 0, Stdout: "* main\n"}, nil)

	_, err := c.ListBranches(context.Background(), "/tmp/repo")
	assert.ErrorIs(t, err, parser.ErrUnparseableOutput)
}

func TestClient_ListTags(t *testing.T) {
	c, mockExec := newTestClient(t)

	mockExec.EXPECT().
		Run(gomock.Any(), "/tmp/repo", "for-each-ref", "refs/tags", "--format", parser.TagListFormat).
		Return(executor.Result{
			ExitCode: 0,
			Stdout:   "v1.0.0\x1faaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n",
		}, nil)

	tags, err := c.ListTags(context.Background(), "/tmp/repo")
	require.NoError(t, err)

	require.Len(t, tags, 1)
	assert.Equal(t, "v1.0.0", tags[0].Name)
}

func TestClient_ListCommits(t *testing.T) {
	c, mockExec := newTestClient(t)

	stdout := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\x1f\x1fJane Doe\x1fjane@example.com" +
		"\x1f2024-02-28 09:00:00\x1finitial\n\x1e"

	mockExec.EXPECT().
		Run(gomock.Any(), "/tmp/repo", "log",
			"--pretty=format:"+parser.CommitLogFormat,
			"--date=format:"+parser.CommitDateFormat).
		Return(executor.Result{ExitCode: 0, Stdout: stdout}, nil)

	iter, err := c.ListCommits(context.Background(), "/tmp/repo", LogParams{})
	require.NoError(t, err)

	record, err := iter.Next()
	require.NoError(t, err)
	assert.Equal(t, "initial", record.Message)
	assert.Equal(t, "Jane Doe", record.Author.Name)

	_, err = iter.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestClient_ListCommits_EmptyRepository(t *testing.T) {
	c, mockExec := newTestClient(t)

	mockExec.EXPECT().
		Run(gomock.Any(), "/tmp/repo", "log",
			"--pretty=format:"+parser.CommitLogFormat,
			"--date=format:"+parser.CommitDateFormat).
		Return(executor.Result{
			ExitCode: 128,
			Stderr:   "fatal: your current branch 'main' does not have any commits yet\n",
		}, nil)

	iter, err := c.ListCommits(context.Background(), "/tmp/repo", LogParams{})
	require.NoError(t, err, "an empty repository is an empty sequence, not an error")

	_, err = iter.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestClient_ActiveBranch(t *testing.T) {
	c, mockExec := newTestClient(t)

	mockExec.EXPECT().
		Run(gomock.Any(), "/tmp/repo", "branch", "--show-current").
		Return(executor.Result{ExitCode: 0, Stdout: "main\n"}, nil)

	branch, err := c.ActiveBranch(context.Background(), "/tmp/repo")
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestClient_ConfigGet(t *testing.T) {
	c, mockExec := newTestClient(t)

	mockExec.EXPECT().
		Run(gomock.Any(), "/tmp/repo", "config", "--local", "--get", "user.name").
		Return(executor.Result{ExitCode: 0, Stdout: "Jane Doe\n"}, nil)

	value, err := c.ConfigGet(context.Background(), "/tmp/repo", "user.name", ScopeLocal)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", value)
}

func TestClient_ConfigGet_MissingKey(t *testing.T) {
	c, mockExec := newTestClient(t)

	mockExec.EXPECT().
		Run(gomock.Any(), "/tmp/repo", "config", "--local", "--get", "missing.key").
		Return(executor.Result{ExitCode: 1}, nil)

	_, err := c.ConfigGet(context.Background(), "/tmp/repo", "missing.key", ScopeLocal)
	assert.ErrorIs(t, err, parser.ErrOperationRejected)
}
