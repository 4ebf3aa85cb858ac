package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lerenn/gitwrap/pkg/client"
)

func createLogCmd() *cobra.Command {
	var maxCount int
	var all bool

	logCmd := &cobra.Command{
		Use:   "log [reference]",
		Short: "Print the commit log, newest first",
		Long: `Print the commit log, newest first.

Examples:
  gitwrap log
  gitwrap log feature --max-count 10
  gitwrap log --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			params := client.LogParams{
				MaxCount: maxCount,
				All:      all,
			}
			if len(args) == 1 {
				params.Reference = args[0]
			}

			iter, err := c.ListCommits(cmd.Context(), repoPath, params)
			if err != nil {
				return err
			}

			for {
				record, err := iter.Next()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}

				subject, _, _ := strings.Cut(record.Message, "\n")
				fmt.Printf("%.12s %s <%s> %s %s\n",
					record.Hash,
					record.Author.Name,
					record.Author.Email,
					record.Date.Format("2006-01-02 15:04:05"),
					subject)
			}
		},
	}

	logCmd.Flags().IntVarP(&maxCount, "max-count", "n", 0, "Limit the number of commits printed")
	logCmd.Flags().BoolVar(&all, "all", false, "Include commits reachable from any reference")

	return logCmd
}
