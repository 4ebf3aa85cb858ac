package command

import (
	"fmt"
	"regexp"
)

// configKeyRegexp accepts dotted-segment keys, e.g. "user.name" or
// "remote.origin.url".
var configKeyRegexp = regexp.MustCompile(`^[^\s.]+(\.[^\s.]+)+$`)

// ConfigGet builds `git config --get` for a key in the given scope.
func ConfigGet(repoPath, key string, scope Scope) (Spec, error) {
	args, err := configArgs(repoPath, key, scope)
	if err != nil {
		return Spec{}, err
	}

	args = append(args, "--get", key)
	return Spec{Args: args, Dir: repoPath}, nil
}

// ConfigSet builds `git config` to write a key in the given scope. The value
// may be empty; git stores empty values.
func ConfigSet(repoPath, key, value string, scope Scope) (Spec, error) {
	args, err := configArgs(repoPath, key, scope)
	if err != nil {
		return Spec{}, err
	}

	args = append(args, key, value)
	return Spec{Args: args, Dir: repoPath}, nil
}

func configArgs(repoPath, key string, scope Scope) ([]string, error) {
	if repoPath == "" {
		return nil, fmt.Errorf("%w: config requires a repository path", ErrInvalidParameters)
	}
	if !configKeyRegexp.MatchString(key) {
		return nil, fmt.Errorf("%w: config key %q is not a dotted-segment key", ErrInvalidParameters, key)
	}

	args := []string{"config"}
	switch scope {
	case ScopeLocal, "":
		args = append(args, "--local")
	case ScopeGlobal:
		args = append(args, "--global")
	default:
		return nil, fmt.Errorf("%w: unknown config scope %q", ErrInvalidParameters, scope)
	}
	return args, nil
}
