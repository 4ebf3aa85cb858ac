package client

import (
	"context"

	"github.com/lerenn/gitwrap/pkg/command"
)

// Branch creates a new branch without checking it out.
func (c *realClient) Branch(ctx context.Context, repoPath, name, startPoint string) error {
	spec, err := command.Branch(repoPath, name, startPoint)
	if err != nil {
		return err
	}

	return c.runMutation(ctx, "branch", spec)
}
