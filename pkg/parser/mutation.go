package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lerenn/gitwrap/pkg/executor"
)

// failurePatterns mark diagnostics as genuine failures even on exit code 0.
var failurePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^fatal:`),
	regexp.MustCompile(`^error:`),
	regexp.MustCompile(`^usage:`),
	regexp.MustCompile(`CONFLICT`),
	regexp.MustCompile(`nothing to commit`),
	regexp.MustCompile(`nothing added to commit`),
	regexp.MustCompile(`^! \[rejected\]`),
}

// benignPatterns cover stderr chatter git produces on successful mutations:
// clone/fetch/push progress, checkout notices, advice.
var benignPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^Cloning into `),
	regexp.MustCompile(`^Switched to (a new )?branch `),
	regexp.MustCompile(`^Already on `),
	regexp.MustCompile(`^Already up to date`),
	regexp.MustCompile(`^warning:`),
	regexp.MustCompile(`^hint:`),
	regexp.MustCompile(`^note:`),
	regexp.MustCompile(`^remote:`),
	regexp.MustCompile(`^From `),
	regexp.MustCompile(`^To `),
	regexp.MustCompile(`^Everything up-to-date`),
	regexp.MustCompile(`^branch '.+' set up to track`),
	regexp.MustCompile(`^\s*\*?\s*\[new (branch|tag)\]`),
	regexp.MustCompile(`^(Enumerating|Counting|Compressing|Receiving|Resolving|Unpacking|Writing) `),
	regexp.MustCompile(`^Total `),
	regexp.MustCompile(`^done\.`),
	regexp.MustCompile(`^Updating `),
	regexp.MustCompile(`^Your branch is up to date`),
}

// ClassifyMutation decides whether a mutation invocation succeeded. A zero
// exit code is necessary but not sufficient: stderr is matched against the
// known failure and benign patterns, and unrecognized diagnostics are
// rejected rather than guessed about.
func ClassifyMutation(operation string, res executor.Result) error {
	diagnostics := strings.TrimRight(res.Stderr, "\n")

	if res.ExitCode != 0 {
		if strings.TrimSpace(diagnostics) == "" {
			// Some failures report on stdout only, e.g. "nothing to commit".
			diagnostics = strings.TrimRight(res.Stdout, "\n")
		}
		return fmt.Errorf("git %s: %w (exit code: %d, output: %s)",
			operation, ErrOperationRejected, res.ExitCode, diagnostics)
	}

	for _, line := range strings.Split(diagnostics, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if matchesAny(line, failurePatterns) {
			return fmt.Errorf("git %s: %w (stderr: %s)", operation, ErrOperationRejected, diagnostics)
		}
		if !matchesAny(line, benignPatterns) {
			return fmt.Errorf("git %s: %w (unrecognized diagnostics: %s)",
				operation, ErrOperationRejected, diagnostics)
		}
	}

	return nil
}

func matchesAny(line string, patterns []*regexp.Regexp) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
