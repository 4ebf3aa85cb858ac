package main

import (
	"github.com/spf13/cobra"

	"github.com/lerenn/gitwrap/pkg/client"
)

func createAddCmd() *cobra.Command {
	var all bool
	var update bool

	addCmd := &cobra.Command{
		Use:   "add [paths...]",
		Short: "Add files to the staging area",
		Long: `Add files to the staging area.

Examples:
  gitwrap add a.txt b.txt
  gitwrap add --all
  gitwrap add --update`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			return c.Add(cmd.Context(), repoPath, client.AddParams{
				Paths:  args,
				All:    all,
				Update: update,
			})
		},
	}

	addCmd.Flags().BoolVarP(&all, "all", "A", false, "Stage all changes, including untracked files")
	addCmd.Flags().BoolVarP(&update, "update", "u", false, "Stage changes to tracked files only")

	return addCmd
}
