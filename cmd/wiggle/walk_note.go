// Walk-note command records a note attached to walks.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/tracker"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

var walkNoteCmd = &cobra.Command{
	Use:   "walk-note <text...>",
	Short: "Record a walk note",
	Long: `Walk-note logs a free-form note about a walk, kept in its own table
separate from general notes.

Example:
  wiggle walk-note pulled hard at the park gate`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWalkNote,
}

func init() {
	addCommitFlags(walkNoteCmd.Flags())
}

func runWalkNote(cmd *cobra.Command, args []string) error {
	tr, err := requireTracker()
	if err != nil {
		return err
	}

	tr.Fields().Set(tracker.FieldWalkNote, strings.Join(args, " "))
	setDateTimeFields(tr)
	tr.Dispatch(tracker.EventCommitWalkNote)

	afterCommit(tr, types.CategoryWalkNote)
	return nil
}
