// Settings command inspects and edits the persistent key-value store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and edit persisted settings",
	Long: `Settings reads and writes the durable key-value store that holds the
last page index, the slider positions, and the saved note draft. Edits are
flushed when the command exits.`,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the known settings and their current values",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		keys := append([]string{settings.KeyLastPageIndex}, settings.SliderKeys...)
		keys = append(keys, settings.KeyNotes, settings.KeyInstallID)
		for _, key := range keys {
			fmt.Printf("%s=%s\n", key, prefs.GetString(key, ""))
		}
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(prefs.GetString(args[0], ""))
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one setting",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		prefs.Set(args[0], args[1])
	},
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
