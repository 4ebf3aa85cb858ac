package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/gitwrap/pkg/command"
)

// Commit records staged changes. Whether anything is staged is decided by
// inspecting git's own verdict, not by an independent pre-check that could
// disagree with it.
func (c *realClient) Commit(ctx context.Context, repoPath string, params CommitParams) error {
	spec, err := command.Commit(repoPath, params)
	if err != nil {
		return err
	}

	if err := c.runMutation(ctx, "commit", spec); err != nil {
		if strings.Contains(err.Error(), "nothing to commit") ||
			strings.Contains(err.Error(), "nothing added to commit") {
			return fmt.Errorf("%w: %w", ErrNothingToCommit, err)
		}
		return err
	}

	return nil
}
