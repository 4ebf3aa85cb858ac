package parser

import (
	"fmt"
	"strings"
)

// ParseBranches parses the output of `git branch --list` invoked with
// BranchListFormat. Empty stdout means no branches exist; non-empty stdout
// that does not match the format fails instead of degrading silently.
func ParseBranches(stdout string) ([]BranchRecord, error) {
	records := []BranchRecord{}
	for _, line := range strings.Split(stdout, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, fieldSeparator)
		if len(fields) != branchFieldCount {
			return nil, fmt.Errorf("%w: expected %d branch fields, got %d in line %q",
				ErrUnparseableOutput, branchFieldCount, len(fields), line)
		}

		records = append(records, BranchRecord{
			Name:     fields[0],
			IsActive: strings.TrimSpace(fields[1]) == "*",
			Upstream: fields[2],
		})
	}
	return records, nil
}

// ParseCurrentBranch parses the output of `git branch --show-current`. The
// output is empty on a detached HEAD, where no branch is active.
func ParseCurrentBranch(stdout string) (string, error) {
	branch := strings.TrimSpace(stdout)
	if branch == "" {
		return "", fmt.Errorf("%w: no active branch reported (detached HEAD)", ErrUnparseableOutput)
	}
	if strings.ContainsAny(branch, "\n") {
		return "", fmt.Errorf("%w: expected a single branch name, got %q", ErrUnparseableOutput, stdout)
	}
	return branch, nil
}
