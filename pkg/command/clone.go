package command

import "fmt"

// Clone builds `git clone` for a source URL and destination path.
func Clone(params CloneParams) (Spec, error) {
	if params.URL == "" {
		return Spec{}, fmt.Errorf("%w: clone requires a source URL or path", ErrInvalidParameters)
	}
	if params.TargetPath == "" {
		return Spec{}, fmt.Errorf("%w: clone requires a destination path", ErrInvalidParameters)
	}
	if params.Depth < 0 {
		return Spec{}, fmt.Errorf("%w: clone depth must not be negative", ErrInvalidParameters)
	}

	args := []string{"clone"}
	if params.Branch != "" {
		args = append(args, "--branch", params.Branch)
	}
	if params.Depth > 0 {
		args = append(args, "--depth", fmt.Sprintf("%d", params.Depth))
	}
	args = append(args, "--", params.URL, params.TargetPath)

	return Spec{Args: args}, nil
}
