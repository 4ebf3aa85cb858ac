package command

import "fmt"

// Init builds `git init` for the target path. The path is part of the argv,
// so the spec carries no working directory.
func Init(params InitParams) (Spec, error) {
	if params.Path == "" {
		return Spec{}, fmt.Errorf("%w: init requires a target path", ErrInvalidParameters)
	}

	args := []string{"init"}
	if params.Bare {
		args = append(args, "--bare")
	}
	if params.InitialBranch != "" {
		args = append(args, "--initial-branch", params.InitialBranch)
	}
	args = append(args, params.Path)

	return Spec{Args: args}, nil
}
