package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createOpenCmd() *cobra.Command {
	openCmd := &cobra.Command{
		Use:   "open [path]",
		Short: "Validate a repository and print its top-level path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			path := repoPath
			if len(args) == 1 {
				path = args[0]
			}

			toplevel, err := c.Open(cmd.Context(), path)
			if err != nil {
				return err
			}

			fmt.Println(toplevel)
			return nil
		},
	}

	return openCmd
}
