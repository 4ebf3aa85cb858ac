package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lerenn/gitwrap/pkg/client"
)

func createConfigCmd() *cobra.Command {
	var global bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Read and write repository configuration",
	}

	configCmd.PersistentFlags().BoolVar(&global, "global", false, "Use the global scope instead of the repository one")

	scope := func() client.Scope {
		if global {
			return client.ScopeGlobal
		}
		return client.ScopeLocal
	}

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			value, err := c.ConfigGet(cmd.Context(), repoPath, args[0], scope())
			if err != nil {
				return err
			}

			fmt.Println(value)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			return c.ConfigSet(cmd.Context(), repoPath, args[0], args[1], scope())
		},
	}

	configCmd.AddCommand(getCmd, setCmd)

	return configCmd
}
