package client

import (
	"context"

	"github.com/lerenn/gitwrap/pkg/command"
)

// Move moves or renames a tracked file; the index records the rename.
func (c *realClient) Move(ctx context.Context, repoPath string, params MoveParams) error {
	spec, err := command.Move(repoPath, params)
	if err != nil {
		return err
	}

	return c.runMutation(ctx, "mv", spec)
}
