package command

import "fmt"

// TagList builds `git for-each-ref refs/tags` with the pinned record format.
func TagList(repoPath, format string) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: tag list requires a repository path", ErrInvalidParameters)
	}
	if format == "" {
		return Spec{}, fmt.Errorf("%w: tag list requires a format", ErrInvalidParameters)
	}

	return Spec{
		Args: []string{"for-each-ref", "refs/tags", "--format", format},
		Dir:  repoPath,
	}, nil
}
