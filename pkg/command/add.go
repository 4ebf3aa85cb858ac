package command

import "fmt"

// Add builds `git add` for the provided paths.
func Add(repoPath string, params AddParams) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: add requires a repository path", ErrInvalidParameters)
	}
	if len(params.Paths) == 0 && !params.All && !params.Update {
		return Spec{}, fmt.Errorf("%w: add requires paths, or the all or update flag", ErrInvalidParameters)
	}

	args := []string{"add"}
	if params.All {
		args = append(args, "--all")
	}
	if params.Update {
		args = append(args, "--update")
	}
	if len(params.Paths) > 0 {
		args = append(args, "--")
		args = append(args, params.Paths...)
	}

	return Spec{Args: args, Dir: repoPath}, nil
}
