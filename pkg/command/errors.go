package command

import "errors"

// Command-specific error types.
var (
	// ErrInvalidParameters indicates malformed or missing caller input,
	// detected before any subprocess is spawned.
	ErrInvalidParameters = errors.New("invalid parameters")
)
