// Ate command records a feeding event.
package main

import (
	"github.com/spf13/cobra"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/tracker"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

var ateCmd = &cobra.Command{
	Use:   "ate",
	Short: "Record that the dog ate",
	Long: `Ate logs a feeding event. A diet record carries only its date and time;
both default to the current wall clock when omitted.

Example:
  wiggle ate
  wiggle ate --date 2026-08-30 --time 07:45`,
	Args: cobra.NoArgs,
	RunE: runAte,
}

func init() {
	addCommitFlags(ateCmd.Flags())
}

func runAte(cmd *cobra.Command, args []string) error {
	tr, err := requireTracker()
	if err != nil {
		return err
	}

	setDateTimeFields(tr)
	tr.Dispatch(tracker.EventCommitDiet)

	afterCommit(tr, types.CategoryDiet)
	return nil
}
