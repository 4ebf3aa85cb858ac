package main

import (
	"github.com/spf13/cobra"

	"github.com/lerenn/gitwrap/pkg/client"
)

func createPullCmd() *cobra.Command {
	pullCmd := &cobra.Command{
		Use:   "pull [remote [refspec]]",
		Short: "Fetch from a remote and integrate into the current branch",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			params := client.PullParams{}
			if len(args) >= 1 {
				params.Remote = args[0]
			}
			if len(args) == 2 {
				params.Refspec = args[1]
			}

			return c.Pull(cmd.Context(), repoPath, params)
		},
	}

	return pullCmd
}
