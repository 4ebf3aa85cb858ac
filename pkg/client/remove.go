package client

import (
	"context"

	"github.com/lerenn/gitwrap/pkg/command"
)

// Remove removes files from the working tree and the index.
func (c *realClient) Remove(ctx context.Context, repoPath string, params RemoveParams) error {
	spec, err := command.Remove(repoPath, params)
	if err != nil {
		return err
	}

	return c.runMutation(ctx, "rm", spec)
}
