//go:build unit

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPull(t *testing.T) {
	spec, err := Pull("/tmp/repo", PullParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{"pull"}, spec.Args)
}

func TestPull_RemoteAndRefspec(t *testing.T) {
	spec, err := Pull("/tmp/repo", PullParams{Remote: "origin", Refspec: "main"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pull", "origin", "main"}, spec.Args)
}

func TestPull_RefspecWithoutRemote(t *testing.T) {
	_, err := Pull("/tmp/repo", PullParams{Refspec: "main"})
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestPush(t *testing.T) {
	spec, err := Push("/tmp/repo", PushParams{Remote: "origin", Refspec: "main"})
	require.NoError(t, err)
	assert.Equal(t, []string{"push", "origin", "main"}, spec.Args)
}

func TestPush_SetUpstreamForce(t *testing.T) {
	spec, err := Push("/tmp/repo", PushParams{Remote: "origin", Refspec: "main", SetUpstream: true, Force: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"push", "--set-upstream", "--force", "origin", "main"}, spec.Args)
}

func TestPush_InvalidParameters(t *testing.T) {
	_, err := Push("/tmp/repo", PushParams{Refspec: "main"})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = Push("/tmp/repo", PushParams{SetUpstream: true})
	assert.ErrorIs(t, err, ErrInvalidParameters)
}
