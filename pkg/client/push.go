package client

import (
	"context"

	"github.com/lerenn/gitwrap/pkg/command"
)

// Push updates a remote with local commits. Pushes are not idempotent, so a
// failure is never retried automatically.
func (c *realClient) Push(ctx context.Context, repoPath string, params PushParams) error {
	spec, err := command.Push(repoPath, params)
	if err != nil {
		return err
	}

	return c.runMutation(ctx, "push", spec)
}
