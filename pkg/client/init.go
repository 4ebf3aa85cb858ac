package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/gitwrap/pkg/command"
)

// Init initializes a new repository at params.Path. Running `git init` on an
// existing repository silently reinitializes it, so the metadata directory is
// checked first and ErrPathConflict returned instead of the no-op.
func (c *realClient) Init(ctx context.Context, params InitParams) error {
	spec, err := command.Init(params)
	if err != nil {
		return err
	}

	if metadataDirExists(params.Path, params.Bare) {
		return fmt.Errorf("%w: a git repository already exists at %s", ErrPathConflict, params.Path)
	}

	return c.runMutation(ctx, "init", spec)
}

func metadataDirExists(path string, bare bool) bool {
	marker := filepath.Join(path, ".git")
	if bare {
		// A bare repository keeps HEAD at the top level.
		marker = filepath.Join(path, "HEAD")
	}
	_, err := os.Stat(marker)
	return err == nil
}
