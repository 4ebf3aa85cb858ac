package client

import (
	"context"

	"github.com/lerenn/gitwrap/pkg/command"
)

// ConfigSet writes a configuration value in the given scope. Writes within
// one scope are last-write-wins; values are opaque strings with no coercion.
func (c *realClient) ConfigSet(ctx context.Context, repoPath, key, value string, scope Scope) error {
	spec, err := command.ConfigSet(repoPath, key, value, scope)
	if err != nil {
		return err
	}

	return c.runMutation(ctx, "config", spec)
}
