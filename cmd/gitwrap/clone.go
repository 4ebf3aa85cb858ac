package main

import (
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lerenn/gitwrap/pkg/client"
	"github.com/lerenn/gitwrap/pkg/forge"
)

func createCloneCmd() *cobra.Command {
	var branch string
	var depth int

	cloneCmd := &cobra.Command{
		Use:   "clone <repository> [target]",
		Short: "Clone a repository",
		Long: `Clone a repository to the target path.

The repository may be a URL, a local path, or an owner/repo shorthand which
is resolved through the forge API first.

Examples:
  gitwrap clone https://github.com/lerenn/example.git
  gitwrap clone git@github.com:lerenn/example.git ./example
  gitwrap clone lerenn/example --depth 1`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			url := args[0]
			if !isDirectCloneSource(url) {
				info, err := forge.NewManager(newLogger()).Resolve(cmd.Context(), url)
				if err != nil {
					return err
				}
				url = info.CloneURL
			}

			target := ""
			if len(args) == 2 {
				target = args[1]
			} else {
				target = strings.TrimSuffix(path.Base(url), ".git")
			}

			return c.Clone(cmd.Context(), client.CloneParams{
				URL:        url,
				TargetPath: target,
				Branch:     branch,
				Depth:      depth,
			})
		},
	}

	cloneCmd.Flags().StringVarP(&branch, "branch", "b", "", "Check out this branch instead of the default")
	cloneCmd.Flags().IntVar(&depth, "depth", 0, "Create a shallow clone with the given history depth")

	return cloneCmd
}

// isDirectCloneSource reports whether the argument can be handed to git as
// is, without forge resolution.
func isDirectCloneSource(arg string) bool {
	if strings.Contains(arg, "://") || strings.HasPrefix(arg, "git@") {
		return true
	}
	// Local paths are valid clone sources too.
	if _, err := os.Stat(arg); err == nil {
		return true
	}
	return false
}
