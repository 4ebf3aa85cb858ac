package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lerenn/gitwrap/pkg/command"
)

// Open validates that repoPath belongs to an existing repository and returns
// its resolved top-level path. There is no "closed" state afterwards: the
// repository stays usable until its directory disappears, which later
// operations detect through ErrExecutionFailed.
func (c *realClient) Open(ctx context.Context, repoPath string) (string, error) {
	spec, err := command.RevParse(repoPath)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(repoPath); err != nil {
		return "", fmt.Errorf("%w: %s", ErrRepositoryNotFound, repoPath)
	}

	result, err := c.executor.Run(ctx, spec.Dir, spec.Args...)
	if err != nil {
		return "", fmt.Errorf("git open failed: %w (command: git %s)", err, strings.Join(spec.Args, " "))
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("%w: %s (stderr: %s)",
			ErrNotARepository, repoPath, strings.TrimSpace(result.Stderr))
	}

	return strings.TrimSpace(result.Stdout), nil
}
