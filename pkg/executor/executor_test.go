//go:build unit

package executor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_Run_CapturesStreamsSeparately(t *testing.T) {
	// The binary path is injected configuration, so any executable works for
	// exercising capture behavior.
	exec := New("sh")

	result, err := exec.Run(context.Background(), "", "-c", "echo out; echo err 1>&2")
	require.NoError(t, err)

	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "out\n", result.Stdout)
	assert.Equal(t, "err\n", result.Stderr)
}

func TestExecutor_Run_NonZeroExitIsData(t *testing.T) {
	exec := New("sh")

	result, err := exec.Run(context.Background(), "", "-c", "echo broken 1>&2; exit 3")
	require.NoError(t, err, "a non-zero exit must not be an error at this layer")

	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "broken\n", result.Stderr)
}

func TestExecutor_Run_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	exec := New("sh")

	result, err := exec.Run(context.Background(), dir, "-c", "pwd")
	require.NoError(t, err)

	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, result.Stdout, dir)
}

func TestExecutor_Run_LaunchFailure(t *testing.T) {
	exec := New("/non/existent/git-binary")

	_, err := exec.Run(context.Background(), "", "status")
	assert.ErrorIs(t, err, ErrExecutionFailed)
}

func TestExecutor_Run_MissingWorkingDirectory(t *testing.T) {
	exec := New("sh")

	_, err := exec.Run(context.Background(), "/non/existent/directory", "-c", "true")
	assert.ErrorIs(t, err, ErrExecutionFailed)
}

func TestExecutor_Run_Cancellation(t *testing.T) {
	exec := New("sh")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := exec.Run(ctx, "", "-c", "sleep 10")
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Less(t, time.Since(start), 3*time.Second,
		"a cancelled Run must return promptly, not wait for the child to finish")
}

func TestExecutor_Run_CancellationWithLingeringGrandchild(t *testing.T) {
	exec := New("sh")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// The sleep is a grandchild holding the inherited output pipes; killing
	// only the direct child would leave Wait blocked on them for 8 seconds.
	start := time.Now()
	_, err := exec.Run(ctx, "", "-c", "sleep 8 & wait")
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Less(t, time.Since(start), 3*time.Second,
		"processes spawned by the child must not delay a cancelled Run")
}

func TestExecutor_Run_AlreadyCancelled(t *testing.T) {
	exec := New("sh")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exec.Run(ctx, "", "-c", "true")
	assert.ErrorIs(t, err, ErrCancelled)
}
