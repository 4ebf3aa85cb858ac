package command

import "fmt"

// Push builds `git push`, optionally to a specific remote and refspec.
func Push(repoPath string, params PushParams) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: push requires a repository path", ErrInvalidParameters)
	}
	if params.Refspec != "" && params.Remote == "" {
		return Spec{}, fmt.Errorf("%w: a push refspec requires a remote", ErrInvalidParameters)
	}
	if params.SetUpstream && params.Remote == "" {
		return Spec{}, fmt.Errorf("%w: setting an upstream requires a remote", ErrInvalidParameters)
	}

	args := []string{"push"}
	if params.SetUpstream {
		args = append(args, "--set-upstream")
	}
	if params.Force {
		args = append(args, "--force")
	}
	if params.Remote != "" {
		args = append(args, params.Remote)
	}
	if params.Refspec != "" {
		args = append(args, params.Refspec)
	}

	return Spec{Args: args, Dir: repoPath}, nil
}
