// List command shows the records of one category.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/settings"
)

var listCmd = &cobra.Command{
	Use:   "list <category>",
	Short: "List the records of a category",
	Long: `List prints every record of the given category in identity order, as an
aligned table or as JSON with --json.

Valid categories: diet, mood, walk, room-time, note, walk-note

Example:
  wiggle list mood
  wiggle list walk --json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	tr, err := requireTracker()
	if err != nil {
		return err
	}

	category, err := parseCategoryArg(args[0])
	if err != nil {
		return err
	}

	model := tr.Model(category)
	if model == nil {
		return fmt.Errorf("no view for category %q; see log for details", category)
	}
	if err := model.Requery(); err != nil {
		return fmt.Errorf("refresh %s view: %w", category, err)
	}

	prefs.Set(settings.KeyLastPageIndex, 1)
	printModel(model)
	return nil
}
