package client

import (
	"context"

	"github.com/lerenn/gitwrap/pkg/command"
)

// Pull fetches from a remote and integrates into the current branch. Merge
// conflicts surface as ErrOperationRejected and are never retried; resolving
// them is the caller's responsibility.
func (c *realClient) Pull(ctx context.Context, repoPath string, params PullParams) error {
	spec, err := command.Pull(repoPath, params)
	if err != nil {
		return err
	}

	return c.runMutation(ctx, "pull", spec)
}
