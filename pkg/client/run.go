package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/gitwrap/pkg/command"
	"github.com/lerenn/gitwrap/pkg/executor"
	"github.com/lerenn/gitwrap/pkg/parser"
)

// runMutation executes a mutation spec and classifies its outcome. Errors
// carry the full argv so a failure can be diagnosed without re-running.
func (c *realClient) runMutation(ctx context.Context, operation string, spec command.Spec) error {
	result, err := c.executor.Run(ctx, spec.Dir, spec.Args...)
	if err != nil {
		return fmt.Errorf("git %s failed: %w (command: git %s)", operation, err, strings.Join(spec.Args, " "))
	}

	if err := parser.ClassifyMutation(operation, result); err != nil {
		return fmt.Errorf("%w (command: git %s)", err, strings.Join(spec.Args, " "))
	}

	return nil
}

// runIntrospection executes a read-only spec and fails on a non-zero exit.
func (c *realClient) runIntrospection(ctx context.Context, operation string, spec command.Spec) (executor.Result, error) {
	result, err := c.executor.Run(ctx, spec.Dir, spec.Args...)
	if err != nil {
		return executor.Result{}, fmt.Errorf("git %s failed: %w (command: git %s)",
			operation, err, strings.Join(spec.Args, " "))
	}

	if result.ExitCode != 0 {
		return result, fmt.Errorf("git %s: %w (exit code: %d, command: git %s, stderr: %s)",
			operation, parser.ErrOperationRejected, result.ExitCode,
			strings.Join(spec.Args, " "), strings.TrimSpace(result.Stderr))
	}

	return result, nil
}
