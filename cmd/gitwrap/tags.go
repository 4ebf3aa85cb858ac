package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createTagsCmd() *cobra.Command {
	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags with their target commits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			tags, err := c.ListTags(cmd.Context(), repoPath)
			if err != nil {
				return err
			}

			for _, tag := range tags {
				fmt.Printf("%.12s %s\n", tag.Target, tag.Name)
			}
			return nil
		},
	}

	return tagsCmd
}
