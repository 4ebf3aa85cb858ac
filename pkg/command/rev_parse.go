package command

import "fmt"

// RevParse builds `git rev-parse --show-toplevel`, used to verify a path is
// inside a repository and resolve its top-level directory.
func RevParse(repoPath string) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: rev-parse requires a repository path", ErrInvalidParameters)
	}

	return Spec{
		Args: []string{"rev-parse", "--show-toplevel"},
		Dir:  repoPath,
	}, nil
}
