// Package main provides the command-line interface for the gitwrap application.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/lerenn/gitwrap/cmd/gitwrap/internal/config"
	"github.com/lerenn/gitwrap/pkg/client"
	"github.com/lerenn/gitwrap/pkg/logger"
)

var (
	verbose    bool
	configPath string
	repoPath   string
)

// loadConfig loads the configuration, falling back to defaults when no
// config file exists.
func loadConfig() *config.Config {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.LoadConfigWithFallback(path)
}

// newLogger returns the logger matching the verbosity flags.
func newLogger() logger.Logger {
	if verbose {
		return logger.NewDefaultLogger()
	}
	return logger.NewNoopLogger()
}

// newClient builds a client from the loaded configuration.
func newClient() (client.Client, error) {
	cfg := loadConfig()

	opts := []client.Option{client.WithLogger(newLogger())}
	if cfg.GitPath != "" {
		opts = append(opts, client.WithGitPath(cfg.GitPath))
	}

	return client.NewClient(opts...)
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "gitwrap",
		Short: "Gitwrap - typed interface to the git command line",
		Long: `A CLI front-end to the gitwrap library: every subcommand maps to one ` +
			`git operation with validated parameters and typed failures.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVarP(&repoPath, "repo", "C", ".", "Path to the repository to operate on")

	// Add subcommands
	rootCmd.AddCommand(
		createInitCmd(),
		createCloneCmd(),
		createOpenCmd(),
		createAddCmd(),
		createRemoveCmd(),
		createMoveCmd(),
		createCommitCmd(),
		createTagCmd(),
		createBranchCmd(),
		createSwitchCmd(),
		createPullCmd(),
		createPushCmd(),
		createConfigCmd(),
		createLogCmd(),
		createBranchesCmd(),
		createTagsCmd(),
		createCurrentBranchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
