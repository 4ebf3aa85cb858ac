package client

import (
	"context"

	"github.com/lerenn/gitwrap/pkg/command"
	"github.com/lerenn/gitwrap/pkg/parser"
)

// ListTags lists tags with their target commits, annotated tags dereferenced.
func (c *realClient) ListTags(ctx context.Context, repoPath string) ([]parser.TagRecord, error) {
	spec, err := command.TagList(repoPath, parser.TagListFormat)
	if err != nil {
		return nil, err
	}

	result, err := c.runIntrospection(ctx, "for-each-ref", spec)
	if err != nil {
		return nil, err
	}

	return parser.ParseTags(result.Stdout)
}
