package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createBranchesCmd() *cobra.Command {
	branchesCmd := &cobra.Command{
		Use:   "branches",
		Short: "List local branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			branches, err := c.ListBranches(cmd.Context(), repoPath)
			if err != nil {
				return err
			}

			for _, branch := range branches {
				marker := " "
				if branch.IsActive {
					marker = "*"
				}
				if branch.Upstream != "" {
					fmt.Printf("%s %s -> %s\n", marker, branch.Name, branch.Upstream)
					continue
				}
				fmt.Printf("%s %s\n", marker, branch.Name)
			}
			return nil
		},
	}

	return branchesCmd
}
