package command

import "fmt"

// Tag builds `git tag`, lightweight by default, annotated when requested.
func Tag(repoPath string, params TagParams) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: tag requires a repository path", ErrInvalidParameters)
	}
	if params.Name == "" {
		return Spec{}, fmt.Errorf("%w: tag requires a name", ErrInvalidParameters)
	}
	if params.Annotated && params.Message == "" {
		return Spec{}, fmt.Errorf("%w: an annotated tag requires a message", ErrInvalidParameters)
	}
	if !params.Annotated && params.Message != "" {
		return Spec{}, fmt.Errorf("%w: a tag message requires the annotated flag", ErrInvalidParameters)
	}

	args := []string{"tag"}
	if params.Annotated {
		args = append(args, "-a", "-m", params.Message)
	}
	args = append(args, params.Name)
	if params.Target != "" {
		args = append(args, params.Target)
	}

	return Spec{Args: args, Dir: repoPath}, nil
}
