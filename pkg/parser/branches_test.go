//go:build unit

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBranches(t *testing.T) {
	stdout := "main\x1f*\x1forigin/main\n" +
		"feature/login\x1f \x1f\n" +
		"fix-42\x1f \x1forigin/fix-42\n"

	branches, err := ParseBranches(stdout)
	require.NoError(t, err)

	require.Len(t, branches, 3)
	assert.Equal(t, BranchRecord{Name: "main", IsActive: true, Upstream: "origin/main"}, branches[0])
	assert.Equal(t, BranchRecord{Name: "feature/login", IsActive: false, Upstream: ""}, branches[1])
	assert.Equal(t, BranchRecord{Name: "fix-42", IsActive: false, Upstream: "origin/fix-42"}, branches[2])
}

func TestParseBranches_Empty(t *testing.T) {
	branches, err := ParseBranches("")
	require.NoError(t, err)
	assert.Empty(t, branches)
}

func TestParseBranches_TrailingBlankLines(t *testing.T) {
	branches, err := ParseBranches("main\x1f*\x1f\n\n\n")
	require.NoError(t, err)
	assert.Len(t, branches, 1)
}

func TestParseBranches_UnexpectedShape(t *testing.T) {
	// Human-readable `git branch` output has no field separators; this must
	// fail loudly, not return an empty list.
	_, err := ParseBranches("* main\n  feature/login\n")
	assert.ErrorIs(t, err, ErrUnparseableOutput)
}

func TestParseCurrentBranch(t *testing.T) {
	branch, err := ParseCurrentBranch("main\n")
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestParseCurrentBranch_DetachedHead(t *testing.T) {
	_, err := ParseCurrentBranch("\n")
	assert.ErrorIs(t, err, ErrUnparseableOutput)
}
