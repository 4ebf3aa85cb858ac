// Package executor runs the external git binary and captures its output.
package executor

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=executor.go -destination=mocks/executor.gen.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/lerenn/gitwrap/pkg/logger"
)

// waitDelay bounds how long a cancelled Run keeps waiting on the output
// pipes before abandoning them.
const waitDelay = time.Second

// Result holds everything a single git invocation produced. It is immutable
// once returned; a non-zero ExitCode is data for the caller, not an error.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor interface provides git process execution capabilities.
type Executor interface {
	// Run executes git with the provided arguments in workDir. An empty
	// workDir inherits the process working directory. A non-zero exit from
	// git is reported in Result, not as an error; Run only fails when the
	// binary could not be launched or the context was cancelled.
	Run(ctx context.Context, workDir string, args ...string) (Result, error)
}

type realExecutor struct {
	gitPath string
	logger  logger.Logger
}

// Option configures the executor.
type Option func(*realExecutor)

// WithLogger sets the logger used to trace executed commands.
func WithLogger(l logger.Logger) Option {
	return func(e *realExecutor) {
		e.logger = l
	}
}

// New creates an Executor that spawns the git binary at gitPath. The path is
// resolved once by the caller and injected here, never looked up per call.
func New(gitPath string, opts ...Option) Executor {
	e := &realExecutor{
		gitPath: gitPath,
		logger:  logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the git binary. Stdout and stderr are captured into separate
// buffers so the parsing layer can classify diagnostics without progress
// output bleeding into structured data.
func (e *realExecutor) Run(ctx context.Context, workDir string, args ...string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	e.logger.Logf("executing: %s %s (dir: %s)", e.gitPath, strings.Join(args, " "), workDir)

	cmd := exec.CommandContext(ctx, e.gitPath, args...)
	cmd.Dir = workDir

	// Git runs in its own process group so cancellation kills helpers it
	// spawned (ssh, credential helpers) along with git itself. A lingering
	// helper would otherwise keep the output pipes open and block Wait.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// On cancellation the whole process group is killed and Wait gives
		// up on the pipes after waitDelay, so Run returns promptly instead
		// of waiting out whatever the child was doing.
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}, nil
		}

		return Result{}, fmt.Errorf("%w: %v (path: %s)", ErrExecutionFailed, err, e.gitPath)
	}

	return Result{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
