package main

import (
	"github.com/spf13/cobra"

	"github.com/lerenn/gitwrap/pkg/client"
)

func createInitCmd() *cobra.Command {
	var bare bool
	var initialBranch string

	initCmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Initialize a new repository",
		Long: `Initialize a new repository at the given path.

Fails when the path already contains a repository instead of silently
reinitializing it.

Examples:
  gitwrap init ./project
  gitwrap init --bare ./project.git
  gitwrap init --initial-branch main ./project`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			return c.Init(cmd.Context(), client.InitParams{
				Path:          args[0],
				Bare:          bare,
				InitialBranch: initialBranch,
			})
		},
	}

	initCmd.Flags().BoolVar(&bare, "bare", false, "Create a bare repository")
	initCmd.Flags().StringVarP(&initialBranch, "initial-branch", "b", "", "Name of the initial branch")

	return initCmd
}
