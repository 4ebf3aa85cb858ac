package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/gitwrap/pkg/command"
)

// Clone clones a repository to params.TargetPath, creating the destination
// directory tree as needed. A non-empty destination is reported as
// ErrPathConflict rather than a generic rejection.
func (c *realClient) Clone(ctx context.Context, params CloneParams) error {
	spec, err := command.Clone(params)
	if err != nil {
		return err
	}

	if err := c.runMutation(ctx, "clone", spec); err != nil {
		if strings.Contains(err.Error(), "already exists and is not an empty directory") {
			return fmt.Errorf("%w: %w", ErrPathConflict, err)
		}
		return err
	}

	return nil
}
