package forge

import "errors"

// Forge-specific errors
var (
	ErrUnsupportedForge   = errors.New("unsupported forge")
	ErrInvalidRepoRef     = errors.New("invalid repository reference format")
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrRateLimited        = errors.New("rate limited by forge API")
	ErrUnauthorized       = errors.New("unauthorized access to forge API")
)
