package command

import "fmt"

// Remove builds `git rm` for the provided paths.
func Remove(repoPath string, params RemoveParams) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: remove requires a repository path", ErrInvalidParameters)
	}
	if len(params.Paths) == 0 {
		return Spec{}, fmt.Errorf("%w: remove requires at least one path", ErrInvalidParameters)
	}

	args := []string{"rm"}
	if params.Recursive {
		args = append(args, "-r")
	}
	if params.Cached {
		args = append(args, "--cached")
	}
	if params.Force {
		args = append(args, "--force")
	}
	args = append(args, "--")
	args = append(args, params.Paths...)

	return Spec{Args: args, Dir: repoPath}, nil
}
