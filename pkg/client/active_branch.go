package client

import (
	"context"

	"github.com/lerenn/gitwrap/pkg/command"
	"github.com/lerenn/gitwrap/pkg/parser"
)

// ActiveBranch returns the currently checked out branch name. Right after
// Init this is the default branch, even before the first commit exists.
func (c *realClient) ActiveBranch(ctx context.Context, repoPath string) (string, error) {
	spec, err := command.CurrentBranch(repoPath)
	if err != nil {
		return "", err
	}

	result, err := c.runIntrospection(ctx, "branch --show-current", spec)
	if err != nil {
		return "", err
	}

	return parser.ParseCurrentBranch(result.Stdout)
}
