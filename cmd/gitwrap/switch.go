package main

import (
	"github.com/spf13/cobra"

	"github.com/lerenn/gitwrap/pkg/client"
)

func createSwitchCmd() *cobra.Command {
	var create bool

	switchCmd := &cobra.Command{
		Use:   "switch <branch>",
		Short: "Check out a branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			return c.Switch(cmd.Context(), repoPath, client.SwitchParams{
				Branch: args[0],
				Create: create,
			})
		},
	}

	switchCmd.Flags().BoolVarP(&create, "create", "b", false, "Create the branch before switching to it")

	return switchCmd
}
