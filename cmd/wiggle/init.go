// Init command for the wiggle CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the logbook storage",
	Long: `Init creates the configuration and data directories, writes a default
config.yaml, and opens the logbook database once so the schema exists. When a
template database ships next to the wiggle binary and no logbook exists yet,
the logbook is seeded from the template.

Example:
  wiggle init
  wiggle init --data-dir /tmp/wiggle`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// openApp already did the heavy lifting; here we only report the
		// outcome, and fail when the store could not be opened.
		if store == nil {
			fmt.Fprintln(os.Stderr, "init: logbook database could not be opened; see log for details")
			os.Exit(1)
		}

		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		fmt.Println("Wiggle initialized successfully")
		fmt.Println("  config:  ", configDir)
		fmt.Println("  logbook: ", store.Path())
		fmt.Println("  settings:", prefs.Path())
		return nil
	},
}
