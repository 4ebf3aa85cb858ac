// Package executor provides git process execution and error definitions.
package executor

import "errors"

// Executor-specific error types.
var (
	// ErrExecutionFailed indicates the git binary could not be launched at
	// all (missing binary, permission denied, unusable working directory).
	ErrExecutionFailed = errors.New("git could not be executed")

	// ErrCancelled indicates the context was cancelled while the command was
	// in flight; the child process has been terminated.
	ErrCancelled = errors.New("operation cancelled")
)
