// Package parser converts raw git output into structured records and errors.
package parser

import "errors"

// Parser-specific error types.
var (
	// ErrUnparseableOutput indicates git ran successfully but produced
	// output that does not match the expected shape. It is surfaced instead
	// of an empty result so "no records" stays distinguishable from "output
	// format changed".
	ErrUnparseableOutput = errors.New("unparseable git output")

	// ErrOperationRejected indicates git ran but reported a failure, either
	// through a non-zero exit code or a recognized failure pattern in its
	// diagnostics.
	ErrOperationRejected = errors.New("operation rejected by git")
)
