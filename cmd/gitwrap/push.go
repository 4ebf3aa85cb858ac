package main

import (
	"github.com/spf13/cobra"

	"github.com/lerenn/gitwrap/pkg/client"
)

func createPushCmd() *cobra.Command {
	var setUpstream bool
	var force bool

	pushCmd := &cobra.Command{
		Use:   "push [remote [refspec]]",
		Short: "Update a remote with local commits",
		Long: `Update a remote with local commits.

Without arguments the remote from the configuration is used.

Examples:
  gitwrap push
  gitwrap push origin main
  gitwrap push --set-upstream origin feature`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			params := client.PushParams{
				SetUpstream: setUpstream,
				Force:       force,
			}
			if len(args) >= 1 {
				params.Remote = args[0]
			} else {
				params.Remote = loadConfig().DefaultRemote
			}
			if len(args) == 2 {
				params.Refspec = args[1]
			}

			return c.Push(cmd.Context(), repoPath, params)
		},
	}

	pushCmd.Flags().BoolVarP(&setUpstream, "set-upstream", "u", false, "Track the pushed branch")
	pushCmd.Flags().BoolVarP(&force, "force", "f", false, "Force the update")

	return pushCmd
}
