package command

import "fmt"

// Log builds `git log` with the pinned pretty and date formats. The history
// starts at HEAD unless a reference is given or All is set.
func Log(repoPath string, params LogParams, format, dateFormat string) (Spec, error) {
	if repoPath == "" {
		return Spec{}, fmt.Errorf("%w: log requires a repository path", ErrInvalidParameters)
	}
	if format == "" || dateFormat == "" {
		return Spec{}, fmt.Errorf("%w: log requires pretty and date formats", ErrInvalidParameters)
	}
	if params.All && params.Reference != "" {
		return Spec{}, fmt.Errorf("%w: log reference and all are mutually exclusive", ErrInvalidParameters)
	}
	if params.MaxCount < 0 {
		return Spec{}, fmt.Errorf("%w: log max count must not be negative", ErrInvalidParameters)
	}

	args := []string{
		"log",
		"--pretty=format:" + format,
		"--date=format:" + dateFormat,
	}
	if params.MaxCount > 0 {
		args = append(args, "--max-count", fmt.Sprintf("%d", params.MaxCount))
	}
	switch {
	case params.All:
		args = append(args, "--all")
	case params.Reference != "":
		args = append(args, params.Reference)
	}

	return Spec{Args: args, Dir: repoPath}, nil
}
