package command

import "fmt"

// Branch builds `git branch` to create a branch, optionally from a start
// point instead of HEAD.
func Branch(repoPath, name, startPoint string) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: branch requires a repository path", ErrInvalidParameters)
	}
	if name == "" {
		return Spec{}, fmt.Errorf("%w: branch requires a name", ErrInvalidParameters)
	}

	args := []string{"branch", name}
	if startPoint != "" {
		args = append(args, startPoint)
	}

	return Spec{Args: args, Dir: repoPath}, nil
}

// BranchList builds `git branch --list` with the pinned record format.
func BranchList(repoPath, format string) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: branch list requires a repository path", ErrInvalidParameters)
	}
	if format == "" {
		return Spec{}, fmt.Errorf("%w: branch list requires a format", ErrInvalidParameters)
	}

	return Spec{
		Args: []string{"branch", "--list", "--format", format},
		Dir:  repoPath,
	}, nil
}

// CurrentBranch builds `git branch --show-current`.
func CurrentBranch(repoPath string) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: current branch requires a repository path", ErrInvalidParameters)
	}

	return Spec{
		Args: []string{"branch", "--show-current"},
		Dir:  repoPath,
	}, nil
}
