package parser

import "time"

// Author identifies who wrote a commit.
type Author struct {
	Name  string
	Email string
}

// CommitRecord is one entry of the commit log. Message keeps line breaks
// intact; only the trailing newline the log format appends is removed.
type CommitRecord struct {
	Hash    string
	Parents []string
	Author  Author
	Date    time.Time
	Message string
}

// BranchRecord describes one local branch. Upstream is empty when the branch
// has no tracking reference configured.
type BranchRecord struct {
	Name     string
	IsActive bool
	Upstream string
}

// TagRecord describes one tag. Target is the commit the tag points to,
// dereferenced for annotated tags.
type TagRecord struct {
	Name   string
	Target string
}
