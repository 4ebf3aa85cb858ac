package client

import (
	"context"

	"github.com/lerenn/gitwrap/pkg/command"
)

// Add adds files to the staging area.
func (c *realClient) Add(ctx context.Context, repoPath string, params AddParams) error {
	spec, err := command.Add(repoPath, params)
	if err != nil {
		return err
	}

	return c.runMutation(ctx, "add", spec)
}
