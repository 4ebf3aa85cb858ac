package client

import (
	"context"
	"strings"

	"github.com/lerenn/gitwrap/pkg/command"
	"github.com/lerenn/gitwrap/pkg/parser"
)

// ListCommits returns a lazy iterator over the commit log, newest first. A
// repository with no commits yet yields an exhausted iterator rather than an
// error so callers can treat "fresh repository" like "empty history".
func (c *realClient) ListCommits(ctx context.Context, repoPath string, params LogParams) (*parser.CommitIter, error) {
	spec, err := command.Log(repoPath, params, parser.CommitLogFormat, parser.CommitDateFormat)
	if err != nil {
		return nil, err
	}

	result, err := c.runIntrospection(ctx, "log", spec)
	if err != nil {
		if strings.Contains(err.Error(), "does not have any commits yet") {
			return parser.Commits(""), nil
		}
		return nil, err
	}

	return parser.Commits(result.Stdout), nil
}
