package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createCurrentBranchCmd() *cobra.Command {
	currentBranchCmd := &cobra.Command{
		Use:   "current-branch",
		Short: "Print the currently checked out branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			branch, err := c.ActiveBranch(cmd.Context(), repoPath)
			if err != nil {
				return err
			}

			fmt.Println(branch)
			return nil
		},
	}

	return currentBranchCmd
}
