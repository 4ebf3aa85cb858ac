package command

import "fmt"

// Commit builds `git commit` with a message. The message is mandatory even
// for amends so the argv shape stays unambiguous.
func Commit(repoPath string, params CommitParams) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: commit requires a repository path", ErrInvalidParameters)
	}
	if params.Message == "" {
		return Spec{}, fmt.Errorf("%w: commit requires a message", ErrInvalidParameters)
	}

	args := []string{"commit"}
	if params.All {
		args = append(args, "--all")
	}
	if params.Amend {
		args = append(args, "--amend")
	}
	args = append(args, "-m", params.Message)

	return Spec{Args: args, Dir: repoPath}, nil
}
