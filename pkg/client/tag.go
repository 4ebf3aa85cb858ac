package client

import (
	"context"

	"github.com/lerenn/gitwrap/pkg/command"
)

// Tag creates a lightweight or annotated tag.
func (c *realClient) Tag(ctx context.Context, repoPath string, params TagParams) error {
	spec, err := command.Tag(repoPath, params)
	if err != nil {
		return err
	}

	return c.runMutation(ctx, "tag", spec)
}
