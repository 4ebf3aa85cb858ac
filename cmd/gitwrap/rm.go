package main

import (
	"github.com/spf13/cobra"

	"github.com/lerenn/gitwrap/pkg/client"
)

func createRemoveCmd() *cobra.Command {
	var recursive bool
	var cached bool
	var force bool

	rmCmd := &cobra.Command{
		Use:   "rm <paths...>",
		Short: "Remove files from the working tree and the index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			return c.Remove(cmd.Context(), repoPath, client.RemoveParams{
				Paths:     args,
				Recursive: recursive,
				Cached:    cached,
				Force:     force,
			})
		},
	}

	rmCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Remove directories recursively")
	rmCmd.Flags().BoolVar(&cached, "cached", false, "Remove from the index only, keep the working tree copy")
	rmCmd.Flags().BoolVarP(&force, "force", "f", false, "Override the up-to-date check")

	return rmCmd
}
