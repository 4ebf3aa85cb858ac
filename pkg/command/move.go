package command

import "fmt"

// Move builds `git mv` from a source to a destination path.
func Move(repoPath string, params MoveParams) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: move requires a repository path", ErrInvalidParameters)
	}
	if params.Source == "" || params.Destination == "" {
		return Spec{}, fmt.Errorf("%w: move requires a source and a destination path", ErrInvalidParameters)
	}
	if params.Source == params.Destination {
		return Spec{}, fmt.Errorf("%w: move source and destination must differ", ErrInvalidParameters)
	}

	args := []string{"mv"}
	if params.Force {
		args = append(args, "--force")
	}
	args = append(args, "--", params.Source, params.Destination)

	return Spec{Args: args, Dir: repoPath}, nil
}
