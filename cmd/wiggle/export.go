// Export command writes the logbook out as JSON Lines.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export the logbook as JSON Lines",
	Long: `Export writes one .jsonl file per category table into the given
directory (default: the current directory), plus an export.json manifest
carrying the batch identifier and per-table record counts.

Example:
  wiggle export
  wiggle export ~/backups/wiggle`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	if _, err := requireTracker(); err != nil {
		return err
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	exportID, err := store.Export(dir)
	if err != nil {
		return fmt.Errorf("export logbook: %w", err)
	}

	fmt.Println("Exported logbook")
	fmt.Println("  batch:", exportID)
	fmt.Println("  dir:  ", dir)
	return nil
}
