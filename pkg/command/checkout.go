package command

import "fmt"

// Checkout builds `git checkout` to switch branches, optionally creating the
// branch first.
func Checkout(repoPath string, params SwitchParams) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: checkout requires a repository path", ErrInvalidParameters)
	}
	if params.Branch == "" {
		return Spec{}, fmt.Errorf("%w: checkout requires a branch name", ErrInvalidParameters)
	}

	args := []string{"checkout"}
	if params.Create {
		args = append(args, "-b")
	}
	args = append(args, params.Branch)

	return Spec{Args: args, Dir: repoPath}, nil
}
