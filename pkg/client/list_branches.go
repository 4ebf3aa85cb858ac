package client

import (
	"context"

	"github.com/lerenn/gitwrap/pkg/command"
	"github.com/lerenn/gitwrap/pkg/parser"
)

// ListBranches lists local branches with their active flag and upstream.
func (c *realClient) ListBranches(ctx context.Context, repoPath string) ([]parser.BranchRecord, error) {
	spec, err := command.BranchList(repoPath, parser.BranchListFormat)
	if err != nil {
		return nil, err
	}

	result, err := c.runIntrospection(ctx, "branch --list", spec)
	if err != nil {
		return nil, err
	}

	return parser.ParseBranches(result.Stdout)
}
