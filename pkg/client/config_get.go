package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/gitwrap/pkg/command"
	"github.com/lerenn/gitwrap/pkg/parser"
)

// ConfigGet reads a configuration value in the given scope. Values come back
// byte-for-byte as stored; only the trailing newline git appends is removed.
func (c *realClient) ConfigGet(ctx context.Context, repoPath, key string, scope Scope) (string, error) {
	spec, err := command.ConfigGet(repoPath, key, scope)
	if err != nil {
		return "", err
	}

	result, err := c.executor.Run(ctx, spec.Dir, spec.Args...)
	if err != nil {
		return "", fmt.Errorf("git config failed: %w (command: git %s)", err, strings.Join(spec.Args, " "))
	}
	if result.ExitCode != 0 {
		// git config --get exits 1 without diagnostics for a missing key.
		return "", fmt.Errorf("git config: %w (key %q not set in %s scope)",
			parser.ErrOperationRejected, key, scopeName(scope))
	}

	return strings.TrimSuffix(result.Stdout, "\n"), nil
}

func scopeName(scope Scope) Scope {
	if scope == "" {
		return ScopeLocal
	}
	return scope
}
