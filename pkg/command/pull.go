package command

import "fmt"

// Pull builds `git pull`, optionally from a specific remote and refspec.
func Pull(repoPath string, params PullParams) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: pull requires a repository path", ErrInvalidParameters)
	}
	if params.Refspec != "" && params.Remote == "" {
		return Spec{}, fmt.Errorf("%w: a pull refspec requires a remote", ErrInvalidParameters)
	}

	args := []string{"pull"}
	if params.Remote != "" {
		args = append(args, params.Remote)
	}
	if params.Refspec != "" {
		args = append(args, params.Refspec)
	}

	return Spec{Args: args, Dir: repoPath}, nil
}
