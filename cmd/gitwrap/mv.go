package main

import (
	"github.com/spf13/cobra"

	"github.com/lerenn/gitwrap/pkg/client"
)

func createMoveCmd() *cobra.Command {
	var force bool

	mvCmd := &cobra.Command{
		Use:   "mv <source> <destination>",
		Short: "Move or rename a tracked file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			return c.Move(cmd.Context(), repoPath, client.MoveParams{
				Source:      args[0],
				Destination: args[1],
				Force:       force,
			})
		},
	}

	mvCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing destination")

	return mvCmd
}
