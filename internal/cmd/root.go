// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dotandev/bricks/internal/catalog"
	"github.com/dotandev/bricks/internal/config"
	"github.com/dotandev/bricks/internal/logger"
	"github.com/dotandev/bricks/internal/updater"
)

// cfg is loaded once before any subcommand runs
var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Terminal browser and editor for a brick catalog",
	Long: `Bricks is a terminal-based browser and editor for a catalog of
building bricks. Records carry a part ID, a name, an amount, color
groups, and alternative part IDs for re-released molds.

Key features:
  - Full-screen interactive browsing and editing (bricks browse)
  - Scriptable catalog commands for listing, searching, and adding
  - YAML import and export of the whole catalog
  - A local sqlite database, no server required

Examples:
  bricks browse                   Start the interactive browser
  bricks list                     Print every item in the catalog
  bricks search 3001              Look an item up by part ID or name
  bricks add --id 3001 --name "Brick 2x4"
  bricks export inventory.yaml    Dump the catalog to YAML

Get started with 'bricks browse' or see 'bricks <command> --help'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

		if !cfg.NoUpdateCheck {
			checkForUpdatesAsync()
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// openStore opens the catalog database configured for this invocation
func openStore() (*catalog.Store, error) {
	return catalog.Open(cfg.DatabasePath)
}

// checkForUpdatesAsync runs the update check in a goroutine to not block CLI startup
func checkForUpdatesAsync() {
	go func() {
		checker := updater.NewChecker(Version)
		checker.CheckForUpdates()
	}()
}
