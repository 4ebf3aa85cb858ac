package main

import (
	"github.com/spf13/cobra"

	"github.com/lerenn/gitwrap/pkg/client"
)

func createCommitCmd() *cobra.Command {
	var message string
	var amend bool
	var all bool

	commitCmd := &cobra.Command{
		Use:   "commit -m <message>",
		Short: "Record staged changes",
		Long: `Record staged changes as a new commit.

Fails with a typed error when the staging area is empty.

Examples:
  gitwrap commit -m "initial commit"
  gitwrap commit --all -m "update docs"
  gitwrap commit --amend -m "fix typo in message"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			return c.Commit(cmd.Context(), repoPath, client.CommitParams{
				Message: message,
				Amend:   amend,
				All:     all,
			})
		},
	}

	commitCmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	commitCmd.Flags().BoolVar(&amend, "amend", false, "Replace the tip of the current branch")
	commitCmd.Flags().BoolVarP(&all, "all", "a", false, "Stage modified and deleted tracked files first")

	return commitCmd
}
