package client

import "errors"

// Client-specific error types.
var (
	// ErrPathConflict indicates an init or clone destination already holds
	// conflicting content.
	ErrPathConflict = errors.New("path conflict")

	// ErrNothingToCommit indicates a commit was requested with an empty
	// staging area.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrRepositoryNotFound indicates the repository path does not exist.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrNotARepository indicates the path exists but is not a git
	// repository.
	ErrNotARepository = errors.New("not a git repository")
)
