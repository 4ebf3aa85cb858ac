package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// CommitIter is a lazy, non-restartable cursor over the output of `git log`
// invoked with CommitLogFormat. Records are parsed one at a time, so a
// caller can stop consuming a large history early.
type CommitIter struct {
	rest string
	done bool
}

// Commits creates a CommitIter over raw log output. Empty output yields an
// iterator that is immediately exhausted.
func Commits(stdout string) *CommitIter {
	return &CommitIter{rest: stdout}
}

// Next returns the next commit, newest first. It returns io.EOF when the
// output is exhausted and ErrUnparseableOutput when a record does not match
// the pinned log format.
func (it *CommitIter) Next() (CommitRecord, error) {
	for !it.done {
		var raw string
		if idx := strings.Index(it.rest, recordSeparator); idx >= 0 {
			raw, it.rest = it.rest[:idx], it.rest[idx+len(recordSeparator):]
		} else {
			raw, it.rest = it.rest, ""
			it.done = true
		}

		// git emits a newline between log entries; it belongs to the
		// format, not to the record.
		raw = strings.TrimPrefix(raw, "\n")
		if strings.TrimSpace(raw) == "" {
			continue
		}

		return parseCommit(raw)
	}
	return CommitRecord{}, io.EOF
}

// ForEach consumes the remaining commits, stopping at the first error
// returned by fn.
func (it *CommitIter) ForEach(fn func(CommitRecord) error) error {
	for {
		record, err := it.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(record); err != nil {
			return err
		}
	}
}

func parseCommit(raw string) (CommitRecord, error) {
	fields := strings.SplitN(raw, fieldSeparator, commitFieldCount)
	if len(fields) != commitFieldCount {
		return CommitRecord{}, fmt.Errorf("%w: expected %d commit fields, got %d in record %q",
			ErrUnparseableOutput, commitFieldCount, len(fields), raw)
	}

	hash := fields[0]
	if hash == "" {
		return CommitRecord{}, fmt.Errorf("%w: empty commit hash in record %q", ErrUnparseableOutput, raw)
	}

	date, err := time.Parse(commitDateLayout, fields[4])
	if err != nil {
		return CommitRecord{}, fmt.Errorf("%w: invalid commit date %q: %v", ErrUnparseableOutput, fields[4], err)
	}

	return CommitRecord{
		Hash:    hash,
		Parents: strings.Fields(fields[1]),
		Author: Author{
			Name:  fields[2],
			Email: fields[3],
		},
		Date:    date,
		Message: strings.TrimSuffix(fields[5], "\n"),
	}, nil
}
