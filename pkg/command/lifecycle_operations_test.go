//go:build unit

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	spec, err := Init(InitParams{Path: "/tmp/repo"})
	require.NoError(t, err)
	assert.Equal(t, []string{"init", "/tmp/repo"}, spec.Args)
	assert.Empty(t, spec.Dir)
}

func TestInit_AllFlags(t *testing.T) {
	spec, err := Init(InitParams{Path: "/tmp/repo", Bare: true, InitialBranch: "main"})
	require.NoError(t, err)
	assert.Equal(t, []string{"init", "--bare", "--initial-branch", "main", "/tmp/repo"}, spec.Args)
}

func TestInit_MissingPath(t *testing.T) {
	_, err := Init(InitParams{})
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestClone(t *testing.T) {
	spec, err := Clone(CloneParams{URL: "git@github.com:lerenn/example.git", TargetPath: "/tmp/example"})
	require.NoError(t, err)
	assert.Equal(t, []string{"clone", "--", "git@github.com:lerenn/example.git", "/tmp/example"}, spec.Args)
}

func TestClone_BranchAndDepth(t *testing.T) {
	spec, err := Clone(CloneParams{
		URL:        "https://github.com/lerenn/example.git",
		TargetPath: "/tmp/example",
		Branch:     "develop",
		Depth:      1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"clone", "--branch", "develop", "--depth", "1",
		"--", "https://github.com/lerenn/example.git", "/tmp/example",
	}, spec.Args)
}

func TestClone_InvalidParameters(t *testing.T) {
	_, err := Clone(CloneParams{TargetPath: "/tmp/example"})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = Clone(CloneParams{URL: "https://github.com/lerenn/example.git"})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = Clone(CloneParams{URL: "https://github.com/lerenn/example.git", TargetPath: "/tmp/example", Depth: -1})
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestRevParse(t *testing.T) {
	spec, err := RevParse("/tmp/repo")
	require.NoError(t, err)
	assert.Equal(t, []string{"rev-parse", "--show-toplevel"}, spec.Args)
	assert.Equal(t, "/tmp/repo", spec.Dir)
}
