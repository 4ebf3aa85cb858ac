package main

import (
	"github.com/spf13/cobra"
)

func createBranchCmd() *cobra.Command {
	branchCmd := &cobra.Command{
		Use:   "branch <name> [start-point]",
		Short: "Create a branch",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			startPoint := ""
			if len(args) == 2 {
				startPoint = args[1]
			}

			return c.Branch(cmd.Context(), repoPath, args[0], startPoint)
		},
	}

	return branchCmd
}
