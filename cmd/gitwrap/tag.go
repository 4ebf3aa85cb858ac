package main

import (
	"github.com/spf13/cobra"

	"github.com/lerenn/gitwrap/pkg/client"
)

func createTagCmd() *cobra.Command {
	var annotated bool
	var message string

	tagCmd := &cobra.Command{
		Use:   "tag <name> [target]",
		Short: "Create a lightweight or annotated tag",
		Long: `Create a tag, optionally pointing at a specific commit.

Examples:
  gitwrap tag v1.0.0
  gitwrap tag v1.0.0 abc1234
  gitwrap tag -a -m "release 1.0.0" v1.0.0`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			target := ""
			if len(args) == 2 {
				target = args[1]
			}

			return c.Tag(cmd.Context(), repoPath, client.TagParams{
				Name:      args[0],
				Target:    target,
				Annotated: annotated,
				Message:   message,
			})
		},
	}

	tagCmd.Flags().BoolVarP(&annotated, "annotate", "a", false, "Create an annotated tag")
	tagCmd.Flags().StringVarP(&message, "message", "m", "", "Annotation message")

	return tagCmd
}
