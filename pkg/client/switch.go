package client

import (
	"context"

	"github.com/lerenn/gitwrap/pkg/command"
)

// Switch checks out a branch, optionally creating it first.
func (c *realClient) Switch(ctx context.Context, repoPath string, params SwitchParams) error {
	spec, err := command.Checkout(repoPath, params)
	if err != nil {
		return err
	}

	return c.runMutation(ctx, "checkout", spec)
}
